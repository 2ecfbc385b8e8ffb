package request

import (
	"antenna_ops/internal/domain/entities"
	"errors"
	"strings"
)

var (
	ErrInvalidPaymentDate = errors.New("invalid payment date")
)

// CreateOrderRequest is the order registration form.
type CreateOrderRequest struct {
	CustomerFirstName       string `json:"customerFirstName" binding:"required"`
	CustomerFatherName      string `json:"customerFatherName"`
	CustomerGrandfatherName string `json:"customerGrandfatherName"`
	MachineType             string `json:"machineType" binding:"required"`
	Phone1                  string `json:"phone1"`
	Phone2                  string `json:"phone2"`
	MachinePrice            int64  `json:"machinePrice" binding:"gte=0"`
	Prepayment              int64  `json:"prepayment" binding:"gte=0"`
	PrepaymentReceipt       string `json:"prepaymentReceipt"`
	DeliveryDate            string `json:"deliveryDate"`
	PaymentDate             string `json:"paymentDate"`
	Description             string `json:"description"`
	Salesperson             string `json:"salesperson"`
	MachineImage            string `json:"machineImage"`
	CustomerIDCard          string `json:"customerIdCard"`
}

func (r CreateOrderRequest) ToDraft() entities.OrderDraft {
	return entities.OrderDraft{
		CustomerFirstName:       strings.TrimSpace(r.CustomerFirstName),
		CustomerFatherName:      strings.TrimSpace(r.CustomerFatherName),
		CustomerGrandfatherName: strings.TrimSpace(r.CustomerGrandfatherName),
		MachineType:             strings.TrimSpace(r.MachineType),
		Phone1:                  r.Phone1,
		Phone2:                  r.Phone2,
		MachinePrice:            r.MachinePrice,
		Prepayment:              r.Prepayment,
		PrepaymentReceipt:       entities.Attachment(r.PrepaymentReceipt),
		DeliveryDate:            entities.Date(r.DeliveryDate),
		PaymentDate:             entities.Date(r.PaymentDate),
		Description:             r.Description,
		Salesperson:             r.Salesperson,
		MachineImage:            entities.Attachment(r.MachineImage),
		CustomerIDCard:          entities.Attachment(r.CustomerIDCard),
	}
}

// PaymentRequest records one settlement made after the prepayment.
type PaymentRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Receipt     string `json:"receipt"`
	ReceiptName string `json:"receiptName"`
}

func (r PaymentRequest) ToPayment() (entities.Payment, error) {
	date := entities.Date(strings.TrimSpace(r.Date))
	if !date.Valid() {
		return entities.Payment{}, ErrInvalidPaymentDate
	}
	return entities.Payment{
		Amount:      r.Amount,
		Date:        date,
		Receipt:     entities.Attachment(r.Receipt),
		ReceiptName: r.ReceiptName,
	}, nil
}

// CompleteOrderRequest carries the final documents attached on completion.
type CompleteOrderRequest struct {
	RestOfPaymentReceipt string `json:"restOfPaymentReceipt"`
	ContractFile         string `json:"contractFile"`
	WarrantyFile         string `json:"warrantyFile"`
	CertificationFile    string `json:"certificationFile"`
}

func (r CompleteOrderRequest) ToDocuments() entities.CompletionDocuments {
	return entities.CompletionDocuments{
		RestOfPaymentReceipt: entities.Attachment(r.RestOfPaymentReceipt),
		ContractFile:         entities.Attachment(r.ContractFile),
		WarrantyFile:         entities.Attachment(r.WarrantyFile),
		CertificationFile:    entities.Attachment(r.CertificationFile),
	}
}

// PrefillQuery names the contact and/or product a new order starts from.
type PrefillQuery struct {
	ContactID string `form:"contactId"`
	ProductID string `form:"productId"`
}
