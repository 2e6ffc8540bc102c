package domain

// Agency is a travel agency. Users belong to exactly one agency.
type Agency struct {
	ID      int64  `db:"id"      json:"id"`
	Name    string `db:"name"    json:"name"`
	Phone   string `db:"phone"   json:"phone"`
	Address string `db:"address" json:"address"`
	Logo    string `db:"logo"    json:"logo"`
}

// Validate checks if the Agency has valid data.
func (a *Agency) Validate() error {
	return firstError(
		requireText("name", a.Name, 100),
		limitText("phone", a.Phone, 20),
		limitText("address", a.Address, 200),
		limitText("logo", a.Logo, 200),
	)
}

// AgencyPatch lists the agency fields an update may change.
// Nil fields are left untouched.
type AgencyPatch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Logo    *string `json:"logo"`
}

// Apply merges the present fields into a.
func (p AgencyPatch) Apply(a *Agency) error {
	applyString(p.Name, &a.Name)
	applyString(p.Phone, &a.Phone)
	applyString(p.Address, &a.Address)
	applyString(p.Logo, &a.Logo)
	return nil
}
