package domain

// UserProfile is the display snapshot of a user owned by the user service.
// No local copy is authoritative; it is fetched live when needed.
type UserProfile struct {
	Id           int
	Name         string
	Email        string
	Role         string
	ProfileImage *string
}
