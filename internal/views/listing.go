package views

import (
	"antenna_ops/internal/domain/entities"
	"cmp"
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidSortKey       = errors.New("invalid sort key")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortKey string

const (
	SortByName         SortKey = "name"
	SortByMachineType  SortKey = "machineType"
	SortByDeliveryDate SortKey = "deliveryDate"
	SortByTrainingType SortKey = "trainingType"
	SortByDueDate      SortKey = "dueDate"
	SortByStatus       SortKey = "status"
)

// Query is a free-text filter plus an optional sort. Empty fields mean "no filter" and
// the listing's default order.
type Query struct {
	Search    string        `form:"q" json:"q,omitempty"`
	SortKey   SortKey       `form:"sort" json:"sort,omitempty"`
	Direction SortDirection `form:"dir" json:"dir,omitempty"`
}

func (q Query) direction() (SortDirection, error) {
	switch q.Direction {
	case "":
		return SortAsc, nil
	case SortAsc, SortDesc:
		return q.Direction, nil
	}
	return "", ErrInvalidSortDirection
}

// PendingOrder is an active order decorated with its delivery countdown.
type PendingOrder struct {
	entities.Order
	Countdown        Countdown `json:"countdown"`
	TotalPaid        int64     `json:"totalPaid"`
	RemainingBalance int64     `json:"remainingBalance"`
}

// PendingDelivery lists every non-completed order matching q, sorted by delivery date
// ascending unless q names another key.
func PendingDelivery(orders []entities.Order, q Query, today entities.Date) ([]PendingOrder, error) {
	dir, err := q.direction()
	if err != nil {
		return nil, err
	}
	key := q.SortKey
	if key == "" {
		key = SortByDeliveryDate
	}
	var less func(a, b entities.Order) int
	switch key {
	case SortByName:
		less = func(a, b entities.Order) int {
			return strings.Compare(shortName(a), shortName(b))
		}
	case SortByMachineType:
		less = func(a, b entities.Order) int {
			return strings.Compare(strings.ToLower(a.MachineType), strings.ToLower(b.MachineType))
		}
	case SortByDeliveryDate:
		less = func(a, b entities.Order) int {
			return compareDates(a.DeliveryDate, b.DeliveryDate)
		}
	default:
		return nil, ErrInvalidSortKey
	}

	matched := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == entities.OrderStatusCompleted {
			continue
		}
		if matchesOrder(o, q.Search) {
			matched = append(matched, o)
		}
	}
	slices.SortStableFunc(matched, directed(less, dir))

	out := make([]PendingOrder, 0, len(matched))
	for _, o := range matched {
		out = append(out, PendingOrder{
			Order:            o,
			Countdown:        DeliveryCountdown(o.DeliveryDate, today),
			TotalPaid:        o.TotalPaid(),
			RemainingBalance: o.RemainingBalance(),
		})
	}
	return out, nil
}

// SearchHistory filters completed orders on the same fields as the pending listing,
// keeping their stored order.
func SearchHistory(history []entities.Order, search string) []entities.Order {
	out := make([]entities.Order, 0, len(history))
	for _, o := range history {
		if matchesOrder(o, search) {
			out = append(out, o)
		}
	}
	return out
}

// ContactFilter narrows the contact list. LeadsOnly mirrors the leads tab.
type ContactFilter struct {
	Query
	LeadsOnly bool `form:"leads" json:"leads,omitempty"`
}

var leadStatusRank = map[entities.LeadStatus]int{
	entities.LeadStatusNew:       1,
	entities.LeadStatusContacted: 2,
	entities.LeadStatusQualified: 3,
	entities.LeadStatusLost:      4,
}

// SearchContacts matches name and product interest case-insensitively and phone
// verbatim. Sort keys are name (default) and status (lead pipeline order, customers last).
func SearchContacts(contacts []entities.Contact, f ContactFilter) ([]entities.Contact, error) {
	dir, err := f.direction()
	if err != nil {
		return nil, err
	}
	var less func(a, b entities.Contact) int
	switch f.SortKey {
	case "", SortByName:
		less = func(a, b entities.Contact) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortByStatus:
		less = func(a, b entities.Contact) int {
			return cmp.Compare(statusRank(a), statusRank(b))
		}
	default:
		return nil, ErrInvalidSortKey
	}

	needle := strings.ToLower(f.Search)
	out := make([]entities.Contact, 0, len(contacts))
	for _, c := range contacts {
		if f.LeadsOnly && c.Type != entities.ContactTypeLead {
			continue
		}
		if f.Search != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(c.Phone, f.Search) &&
			!strings.Contains(strings.ToLower(c.ProductInterest), needle) {
			continue
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, directed(less, dir))
	return out, nil
}

// TrainingTab selects the registration (ongoing) or history (completed) view.
type TrainingTab string

const (
	TrainingTabAll          TrainingTab = ""
	TrainingTabRegistration TrainingTab = "registration"
	TrainingTabHistory      TrainingTab = "history"
)

type TrainingFilter struct {
	Query
	Tab TrainingTab `form:"tab" json:"tab,omitempty"`
}

// SearchTrainings matches name, type and category case-insensitively and phone verbatim.
// Default sort is name ascending.
func SearchTrainings(trainings []entities.Training, f TrainingFilter) ([]entities.Training, error) {
	dir, err := f.direction()
	if err != nil {
		return nil, err
	}
	var less func(a, b entities.Training) int
	switch f.SortKey {
	case "", SortByName:
		less = func(a, b entities.Training) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortByTrainingType:
		less = func(a, b entities.Training) int {
			return strings.Compare(strings.ToLower(a.TrainingType), strings.ToLower(b.TrainingType))
		}
	case SortByDueDate:
		less = func(a, b entities.Training) int {
			return compareDates(a.DueDate, b.DueDate)
		}
	default:
		return nil, ErrInvalidSortKey
	}

	needle := strings.ToLower(f.Search)
	out := make([]entities.Training, 0, len(trainings))
	for _, t := range trainings {
		switch f.Tab {
		case TrainingTabRegistration:
			if t.Status != entities.TrainingStatusOngoing {
				continue
			}
		case TrainingTabHistory:
			if t.Status != entities.TrainingStatusCompleted {
				continue
			}
		}
		if f.Search != "" &&
			!strings.Contains(strings.ToLower(t.Name), needle) &&
			!strings.Contains(t.Phone, f.Search) &&
			!strings.Contains(strings.ToLower(t.TrainingType), needle) &&
			!strings.Contains(strings.ToLower(t.TrainingCategory), needle) {
			continue
		}
		out = append(out, t)
	}
	slices.SortStableFunc(out, directed(less, dir))
	return out, nil
}

// CompletedTrainings is the training history in stored order.
func CompletedTrainings(trainings []entities.Training) []entities.Training {
	out := make([]entities.Training, 0, len(trainings))
	for _, t := range trainings {
		if t.Status == entities.TrainingStatusCompleted {
			out = append(out, t)
		}
	}
	return out
}

func matchesOrder(o entities.Order, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	full := strings.ToLower(o.CustomerFirstName + " " + o.CustomerFatherName + " " + o.CustomerGrandfatherName)
	return strings.Contains(full, needle) ||
		strings.Contains(strings.ToLower(o.MachineType), needle) ||
		strings.Contains(strings.ToLower(o.ID), needle) ||
		strings.Contains(strings.ToLower(o.Salesperson), needle)
}

func shortName(o entities.Order) string {
	return strings.ToLower(o.CustomerFirstName + " " + o.CustomerFatherName)
}

func statusRank(c entities.Contact) int {
	if r, ok := leadStatusRank[c.LeadStatus]; ok {
		return r
	}
	return 99
}

// compareDates orders unparseable dates first.
func compareDates(a, b entities.Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	}
	return 0
}

func directed[T any](less func(a, b T) int, dir SortDirection) func(a, b T) int {
	if dir == SortDesc {
		return func(a, b T) int { return less(b, a) }
	}
	return less
}
