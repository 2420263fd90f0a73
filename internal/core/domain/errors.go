package domain

import "errors"

// ErrorKind tells the transport layer how a failure should be reported.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is the error type returned by the core services.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal server error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError builds an input error whose message is shown to the caller as is.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewInternalError wraps an unexpected failure. Its text is the wrapped error's text.
func NewInternalError(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf reports the kind of err. Errors not produced by this package are internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrMissingUserFields  = NewValidationError("Champs requis manquants : pseudo, email")
	ErrMissingVoteFields  = NewValidationError("Champs requis manquants : email, choice")
	ErrInvalidChoice      = NewValidationError("Le choix doit être 'Oui' ou 'Non'")
	ErrMissingEmailParam  = NewValidationError("Paramètre 'email' requis")
	ErrInvalidRequestBody = NewValidationError("Corps de requête JSON invalide")
)
