package views

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"errors"
	"slices"
	"strings"
)

var ErrInvalidPeriod = errors.New("invalid report period")

// Period is the reporting window.
type Period string

const (
	PeriodWeekly  Period = "Weekly"
	PeriodMonthly Period = "Monthly"
)

// ParsePeriod accepts "weekly"/"monthly" in any case. Empty means Weekly.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weekly":
		return PeriodWeekly, nil
	case "monthly":
		return PeriodMonthly, nil
	}
	return "", ErrInvalidPeriod
}

func (p Period) Days() int {
	if p == PeriodMonthly {
		return 30
	}
	return 7
}

// Count is one histogram bucket. Buckets keep first-seen order.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type RevenuePoint struct {
	Date    entities.Date `json:"date"`
	Revenue int64         `json:"revenue"`
}

// Report is the time-windowed business summary. Orders and History are filtered to the
// window; contacts, trainings and letters are all-time totals.
type Report struct {
	Period                Period           `json:"period"`
	Today                 entities.Date    `json:"today"`
	Cutoff                entities.Date    `json:"cutoff"`
	CompletedOrders       []entities.Order `json:"completedOrders"`
	ActiveOrders          []entities.Order `json:"activeOrders"`
	TotalContacts         int              `json:"totalContacts"`
	TotalTrainings        int              `json:"totalTrainings"`
	TotalLetters          int              `json:"totalLetters"`
	TotalRevenue          int64            `json:"totalRevenue"`
	TotalPaymentsReceived int64            `json:"totalPaymentsReceived"`
	RevenueSeries         []RevenuePoint   `json:"revenueSeries"`
	MachineTypeCounts     []Count          `json:"machineTypeCounts"`
	TrainingTypeCounts    []Count          `json:"trainingTypeCounts"`
	LetterStatusCounts    []Count          `json:"letterStatusCounts"`
}

// BuildReport keeps History entries paid after the cutoff and active orders delivered
// after it, where cutoff = today - period days. Future dates are inside the window.
func BuildReport(snap usecase.Snapshot, period Period, today entities.Date) (Report, error) {
	cutoff, err := today.AddDays(-period.Days())
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Period:          period,
		Today:           today,
		Cutoff:          cutoff,
		CompletedOrders: []entities.Order{},
		ActiveOrders:    []entities.Order{},
		TotalContacts:   len(snap.Contacts),
		TotalTrainings:  len(snap.Trainings),
		TotalLetters:    len(snap.Letters),
	}
	for _, o := range snap.History {
		if cutoff.Before(o.PaymentDate) {
			r.CompletedOrders = append(r.CompletedOrders, o)
		}
	}
	for _, o := range snap.Orders {
		if cutoff.Before(o.DeliveryDate) {
			r.ActiveOrders = append(r.ActiveOrders, o)
		}
	}

	r.TotalRevenue = Revenue(r.CompletedOrders)
	inWindow := append(append([]entities.Order{}, r.ActiveOrders...), r.CompletedOrders...)
	machineTypes := make([]string, 0, len(inWindow))
	for _, o := range inWindow {
		r.TotalPaymentsReceived += o.TotalPaid()
		machineTypes = append(machineTypes, o.MachineType)
	}
	r.MachineTypeCounts = Histogram(machineTypes)

	trainingTypes := make([]string, 0, len(snap.Trainings))
	for _, t := range snap.Trainings {
		trainingTypes = append(trainingTypes, t.TrainingType)
	}
	r.TrainingTypeCounts = Histogram(trainingTypes)

	statuses := make([]string, 0, len(snap.Letters))
	for _, l := range snap.Letters {
		statuses = append(statuses, string(l.Status))
	}
	r.LetterStatusCounts = Histogram(statuses)

	r.RevenueSeries = RevenueSeries(r.CompletedOrders)
	return r, nil
}

// RevenueSeries sums machine prices per payment date, oldest first.
func RevenueSeries(history []entities.Order) []RevenuePoint {
	points := []RevenuePoint{}
	for _, o := range history {
		i := slices.IndexFunc(points, func(p RevenuePoint) bool { return p.Date == o.PaymentDate })
		if i < 0 {
			points = append(points, RevenuePoint{Date: o.PaymentDate})
			i = len(points) - 1
		}
		points[i].Revenue += o.MachinePrice
	}
	slices.SortStableFunc(points, func(a, b RevenuePoint) int {
		return compareDates(a.Date, b.Date)
	})
	return points
}

func Histogram(labels []string) []Count {
	out := []Count{}
	for _, l := range labels {
		i := slices.IndexFunc(out, func(c Count) bool { return c.Label == l })
		if i < 0 {
			out = append(out, Count{Label: l})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out
}
