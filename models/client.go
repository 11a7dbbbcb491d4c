package models

type Contact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	IsPrimary bool   `json:"is_primary"`
}

// ClientContacts is the contact hierarchy partners actually work:
// AP staff first, controller/CFO for escalations, owner for sensitive cases.
type ClientContacts struct {
	Primary    Contact  `json:"primary"`
	Escalation *Contact `json:"escalation"`
	Owner      *Contact `json:"owner"`
}

// EscalationOrPrimary falls back to the primary contact when no escalation
// contact exists. Pure derivation code must never fail on a thin contact set.
func (c ClientContacts) EscalationOrPrimary() Contact {
	if c.Escalation != nil {
		return *c.Escalation
	}
	return c.Primary
}

type Client struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Industry     string         `json:"industry"`
	PartnerIndex int            `json:"partner_index"`
	Status       ClientStatus   `json:"status"`
	Contacts     ClientContacts `json:"contacts"`
}

type Partner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
