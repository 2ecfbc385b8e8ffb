package views

import (
	"antenna_ops/internal/domain/entities"
	"strings"
)

// minLookupLength is the shortest query the customer lookup answers.
const minLookupLength = 2

// LookupContacts backs the order form's customer lookup: name is matched
// case-insensitively, phone verbatim. Queries shorter than two characters return nothing.
func LookupContacts(contacts []entities.Contact, query string) []entities.Contact {
	out := []entities.Contact{}
	if len(query) < minLookupLength {
		return out
	}
	needle := strings.ToLower(query)
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.Phone, needle) {
			out = append(out, c)
		}
	}
	return out
}

// OrderFromContact copies the contact into the draft. The name is split on whitespace
// into first, father and grandfather (the remainder) names. An existing description is kept.
func OrderFromContact(draft entities.OrderDraft, c entities.Contact) entities.OrderDraft {
	parts := strings.Fields(c.Name)
	draft.CustomerFirstName, draft.CustomerFatherName, draft.CustomerGrandfatherName = "", "", ""
	if len(parts) > 0 {
		draft.CustomerFirstName = parts[0]
	}
	if len(parts) > 1 {
		draft.CustomerFatherName = parts[1]
	}
	if len(parts) > 2 {
		draft.CustomerGrandfatherName = strings.Join(parts[2:], " ")
	}
	draft.Phone1 = c.Phone
	if draft.Description == "" && c.ProductInterest != "" {
		draft.Description = "Interested in " + c.ProductInterest
	}
	return draft
}

// OrderFromProduct copies catalog values; the order holds no reference to the product.
func OrderFromProduct(draft entities.OrderDraft, p entities.Product) entities.OrderDraft {
	if p.ItemGroup != "" {
		draft.MachineType = p.ItemGroup
	}
	if desc := strings.TrimSuffix(p.Name+" - "+p.Model, " - "); desc != "" {
		draft.Description = desc
	}
	if p.Price != nil && *p.Price > 0 {
		draft.MachinePrice = *p.Price
	}
	return draft
}

// TrainingFromProduct uses the course name as the training type.
func TrainingFromProduct(draft entities.TrainingDraft, p entities.Product) entities.TrainingDraft {
	draft.TrainingType = p.Name
	return draft
}
