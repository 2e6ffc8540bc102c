package domain

// User is a traveller registered with an agency.
// User e-mails are unique.
type User struct {
	ID       int64  `db:"id"        json:"id"`
	Name     string `db:"name"      json:"name"`
	Email    string `db:"email"     json:"email"`
	AgencyID int64  `db:"agency_id" json:"agency_id"`
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	return firstError(
		requireText("name", u.Name, 100),
		requireEmail("email", u.Email),
		requireID("agency_id", u.AgencyID),
	)
}

// UserPatch lists the user fields an update may change.
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	AgencyID *int64  `json:"agency_id"`
}

// Apply merges the present fields into u.
func (p UserPatch) Apply(u *User) error {
	applyString(p.Name, &u.Name)
	applyString(p.Email, &u.Email)
	applyInt64(p.AgencyID, &u.AgencyID)
	return nil
}
