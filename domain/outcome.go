package domain

// Outcome is the terminal state of one inbound message.
type Outcome string

const (
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeRejected  Outcome = "rejected"
	OutcomePublished Outcome = "published"
)
