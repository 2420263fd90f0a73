package domain

import "github.com/google/uuid"

type Choice string

const (
	ChoiceYes Choice = "Oui"
	ChoiceNo  Choice = "Non"
)

// Choices lists every accepted ballot value.
var Choices = []Choice{ChoiceYes, ChoiceNo}

func (c Choice) Valid() bool {
	return c == ChoiceYes || c == ChoiceNo
}

type Vote struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Pseudo    string    `json:"pseudo"`
	Choice    Choice    `json:"choice"`
	CreatedAt string    `json:"createdAt"`
}

// VoteSummary is the public view of a vote returned by the listing endpoint.
type VoteSummary struct {
	Email  string `json:"email"`
	Pseudo string `json:"pseudo"`
	Choice string `json:"choice"`
}
