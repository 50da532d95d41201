package models

// Course represents a user-owned course, optionally identified by a short code.
type Course struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Code    string `json:"code,omitempty" db:"code"`
	OwnerID int64  `json:"ownerId" db:"owner_id"`
}

// DisplayName returns "Name (Code)" when a code is set, otherwise just the name.
func (c *Course) DisplayName() string {
	if c.Code != "" {
		return c.Name + " (" + c.Code + ")"
	}
	return c.Name
}
