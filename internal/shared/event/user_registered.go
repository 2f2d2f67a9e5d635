package event

const UserRegisteredDestination string = "auth.user.registered"

type UserRegisteredMessage struct {
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}
