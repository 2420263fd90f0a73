package ports

import "github.com/vncsmyrnk/ballotbox/internal/core/domain"

type Metrics interface {
	UserRegistered()
	VoteRecorded(choice domain.Choice)
	VoteRejected(reason string)
	PublishFailed()
}
