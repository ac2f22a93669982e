package domain

// SessionKey is the fixed Key-Value Store key holding the bearer token.
const SessionKey = "auth_token"

// Session holds the bearer token for the current authenticated user.
// The zero value is the unauthenticated state.
type Session struct {
	Token string `json:"token"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool { return s.Token != "" }

// UserRecord models a helpdesk account, either fetched read-only from the
// remote directory or fully owned by the local CRUD store. Wire names follow
// the gateway's snake_case contract.
type UserRecord struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Followers int    `json:"followers,omitempty"`
	Following int    `json:"following,omitempty"`

	// Cosmetic profile fields used only by locally stored records.
	ImageLink       string `json:"image_link,omitempty"`
	BackgroundImage string `json:"background_image,omitempty"`
	Description     string `json:"description,omitempty"`
}

// FullName returns "First Last" for display.
func (u UserRecord) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
