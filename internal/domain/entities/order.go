package entities

import (
	"fmt"
	"strings"
)

// OrderStatus represents the lifecycle of a machine order.
//
// Domain notes:
//   - Pending -> Ready for Completion -> Completed, forward only
//   - Completed orders leave the active collection for History and are never mutated again
type OrderStatus string

const (
	OrderStatusPending            OrderStatus = "Pending"
	OrderStatusReadyForCompletion OrderStatus = "Ready for Completion"
	OrderStatusCompleted          OrderStatus = "Completed"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:            {OrderStatusReadyForCompletion, OrderStatusCompleted},
	OrderStatusReadyForCompletion: {OrderStatusCompleted},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReadyForCompletion, OrderStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a forward step from s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active reports whether an order with this status belongs to the Orders collection.
func (s OrderStatus) Active() bool {
	return s == OrderStatusPending || s == OrderStatusReadyForCompletion
}

// Payment is a settlement made after the prepayment. Amount is whole ETB.
type Payment struct {
	Amount      int64      `json:"amount"`
	Date        Date       `json:"date"`
	Receipt     Attachment `json:"receipt,omitempty"`
	ReceiptName string     `json:"receiptName,omitempty"`
}

// Order is a machine sale from registration through delivery and final settlement.
//
// Storage model:
//   - slot "orders" holds Pending / Ready for Completion records
//   - slot "history" holds Completed records
//
// Monetary representation:
//   - MachinePrice, Prepayment and Payment.Amount are integer ETB
//   - total paid and remaining balance are always derived, never stored
type Order struct {
	ID                      string      `json:"id"`
	CustomerFirstName       string      `json:"customerFirstName"`
	CustomerFatherName      string      `json:"customerFatherName"`
	CustomerGrandfatherName string      `json:"customerGrandfatherName"`
	MachineType             string      `json:"machineType"`
	Phone1                  string      `json:"phone1"`
	Phone2                  string      `json:"phone2,omitempty"`
	MachinePrice            int64       `json:"machinePrice"`
	Prepayment              int64       `json:"prepayment"`
	PrepaymentReceipt       Attachment  `json:"prepaymentReceipt,omitempty"`
	PaymentHistory          []Payment   `json:"paymentHistory"`
	DeliveryDate            Date        `json:"deliveryDate"`
	PaymentDate             Date        `json:"paymentDate"`
	Description             string      `json:"description"`
	Salesperson             string      `json:"salesperson"`
	MachineImage            Attachment  `json:"machineImage,omitempty"`
	CustomerIDCard          Attachment  `json:"customerIdCard,omitempty"`
	Status                  OrderStatus `json:"status"`
	RestOfPaymentReceipt    Attachment  `json:"restOfPaymentReceipt,omitempty"`
	ContractFile            Attachment  `json:"contractFile,omitempty"`
	WarrantyFile            Attachment  `json:"warrantyFile,omitempty"`
	CertificationFile       Attachment  `json:"certificationFile,omitempty"`
}

// OrderDraft carries the caller-supplied fields of a new order. Id, status, payment
// history and the completion documents are assigned by the store.
type OrderDraft struct {
	CustomerFirstName       string     `json:"customerFirstName"`
	CustomerFatherName      string     `json:"customerFatherName"`
	CustomerGrandfatherName string     `json:"customerGrandfatherName"`
	MachineType             string     `json:"machineType"`
	Phone1                  string     `json:"phone1"`
	Phone2                  string     `json:"phone2,omitempty"`
	MachinePrice            int64      `json:"machinePrice"`
	Prepayment              int64      `json:"prepayment"`
	PrepaymentReceipt       Attachment `json:"prepaymentReceipt,omitempty"`
	DeliveryDate            Date       `json:"deliveryDate"`
	PaymentDate             Date       `json:"paymentDate"`
	Description             string     `json:"description"`
	Salesperson             string     `json:"salesperson"`
	MachineImage            Attachment `json:"machineImage,omitempty"`
	CustomerIDCard          Attachment `json:"customerIdCard,omitempty"`
}

// CompletionDocuments are attached when an order moves to History.
type CompletionDocuments struct {
	RestOfPaymentReceipt Attachment `json:"restOfPaymentReceipt,omitempty"`
	ContractFile         Attachment `json:"contractFile,omitempty"`
	WarrantyFile         Attachment `json:"warrantyFile,omitempty"`
	CertificationFile    Attachment `json:"certificationFile,omitempty"`
}

// OrderID formats the sequential display id, e.g. ANN004.
func OrderID(n int) string {
	return fmt.Sprintf("ANN%03d", n)
}

func (d OrderDraft) ToOrder(id string) Order {
	return Order{
		ID:                      id,
		CustomerFirstName:       d.CustomerFirstName,
		CustomerFatherName:      d.CustomerFatherName,
		CustomerGrandfatherName: d.CustomerGrandfatherName,
		MachineType:             d.MachineType,
		Phone1:                  d.Phone1,
		Phone2:                  d.Phone2,
		MachinePrice:            d.MachinePrice,
		Prepayment:              d.Prepayment,
		PrepaymentReceipt:       d.PrepaymentReceipt,
		PaymentHistory:          []Payment{},
		DeliveryDate:            d.DeliveryDate,
		PaymentDate:             d.PaymentDate,
		Description:             d.Description,
		Salesperson:             d.Salesperson,
		MachineImage:            d.MachineImage,
		CustomerIDCard:          d.CustomerIDCard,
		Status:                  OrderStatusPending,
	}
}

func (o Order) CustomerName() string {
	return strings.Join(strings.Fields(strings.Join([]string{o.CustomerFirstName, o.CustomerFatherName, o.CustomerGrandfatherName}, " ")), " ")
}

// TotalPaid is prepayment plus every recorded payment.
func (o Order) TotalPaid() int64 {
	total := o.Prepayment
	for _, p := range o.PaymentHistory {
		total += p.Amount
	}
	return total
}

func (o Order) RemainingBalance() int64 {
	return o.MachinePrice - o.TotalPaid()
}

// Documents lists every document field of the order in display order, present or not.
func (o Order) Documents() []LabeledAttachment {
	return []LabeledAttachment{
		{Label: "Machine Image", File: o.MachineImage},
		{Label: "Customer ID Card", File: o.CustomerIDCard},
		{Label: "Prepayment Receipt", File: o.PrepaymentReceipt},
		{Label: "Final Payment Receipt", File: o.RestOfPaymentReceipt},
		{Label: "Contract", File: o.ContractFile},
		{Label: "Warranty", File: o.WarrantyFile},
		{Label: "Certification", File: o.CertificationFile},
	}
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	c := o
	c.PaymentHistory = append([]Payment(nil), o.PaymentHistory...)
	if c.PaymentHistory == nil {
		c.PaymentHistory = []Payment{}
	}
	return c
}
