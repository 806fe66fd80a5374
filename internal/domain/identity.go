package domain

// Identity is the authenticated principal. A nil *Identity means guest.
type Identity struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsStaff   bool   `json:"is_staff,omitempty"`
}

// DisplayName returns the best available human-readable name.
func (id Identity) DisplayName() string {
	if id.Username != "" {
		return id.Username
	}
	return id.Email
}
