package event

const ChallengeIssuedDestination string = "auth.challenge.issued"

// ChallengeIssuedMessage announces that a one-time code was sent to an
// identity. The code itself is never part of the payload.
type ChallengeIssuedMessage struct {
	Email    string `json:"email"`
	IssuedAt string `json:"issued_at"`
}
