// Package document implements the user and vote repositories on top of any
// ports.DocumentStore. Both collections are partitioned on the email.
package document

import "github.com/vncsmyrnk/ballotbox/internal/core/ports"

const (
	UsersCollection = "users"
	VotesCollection = "votes"
)

func stringField(doc ports.Document, field string) string {
	s, _ := doc[field].(string)
	return s
}
