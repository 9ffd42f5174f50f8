package models

// Roles a user account can hold.
const (
	RoleBrandUser = "brand_user"
	RoleMerchOps  = "merch_ops"
)

// User represents a user account in the system.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"` // Never expose this to the client
}

// PublicView returns a copy safe to send to clients.
func (u User) PublicView() User {
	u.PasswordHash = ""
	return u
}
