package entities

// ContactType discriminates customers from sales leads.
type ContactType string

const (
	ContactTypeCustomer ContactType = "Customer"
	ContactTypeLead     ContactType = "Lead"
)

// LeadStatus is only meaningful when the contact is a Lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusLost      LeadStatus = "Lost"
)

func (t ContactType) Valid() bool {
	return t == ContactTypeCustomer || t == ContactTypeLead
}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost:
		return true
	}
	return false
}

type Contact struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Phone           string      `json:"phone"`
	ProductInterest string      `json:"productInterest"`
	Description     string      `json:"description"`
	Address         string      `json:"address"`
	Type            ContactType `json:"type"`
	LeadStatus      LeadStatus  `json:"leadStatus,omitempty"`
}

// Normalize repairs the type discriminator: a missing type becomes Customer and every
// Lead gets a lead status.
func (c Contact) Normalize() Contact {
	if !c.Type.Valid() {
		c.Type = ContactTypeCustomer
	}
	if c.Type == ContactTypeLead && !c.LeadStatus.Valid() {
		c.LeadStatus = LeadStatusNew
	}
	return c
}
