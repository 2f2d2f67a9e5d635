package event

const CredentialRevokedDestination string = "auth.credential.revoked"

type CredentialRevokedMessage struct {
	Subject   string `json:"subject"`
	RevokedAt string `json:"revoked_at"`
}
