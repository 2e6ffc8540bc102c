package domain

// Agent is a travel agent. Agent e-mails are unique.
type Agent struct {
	ID        int64  `db:"id"         json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name"  json:"last_name"`
	Phone     string `db:"phone"      json:"phone"`
	Email     string `db:"email"      json:"email"`
}

// Validate checks if the Agent has valid data.
func (a *Agent) Validate() error {
	return firstError(
		requireText("first_name", a.FirstName, 100),
		requireText("last_name", a.LastName, 100),
		limitText("phone", a.Phone, 20),
		requireEmail("email", a.Email),
	)
}

// AgentPatch lists the agent fields an update may change.
type AgentPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// Apply merges the present fields into a.
func (p AgentPatch) Apply(a *Agent) error {
	applyString(p.FirstName, &a.FirstName)
	applyString(p.LastName, &a.LastName)
	applyString(p.Phone, &a.Phone)
	applyString(p.Email, &a.Email)
	return nil
}
