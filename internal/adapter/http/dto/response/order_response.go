package response

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/views"
)

// OrderResponse decorates an order with its derived totals.
type OrderResponse struct {
	entities.Order
	CustomerName     string `json:"customerName"`
	TotalPaid        int64  `json:"totalPaid"`
	RemainingBalance int64  `json:"remainingBalance"`
	TotalPaidText    string `json:"totalPaidText"`
	RemainingText    string `json:"remainingBalanceText"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		Order:            o,
		CustomerName:     o.CustomerName(),
		TotalPaid:        o.TotalPaid(),
		RemainingBalance: o.RemainingBalance(),
		TotalPaidText:    views.FormatETB(o.TotalPaid()),
		RemainingText:    views.FormatETB(o.RemainingBalance()),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
