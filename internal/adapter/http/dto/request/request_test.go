package request

import (
	"antenna_ops/internal/domain/entities"
	"errors"
	"testing"
)

func TestCreateOrderRequest_ToDraft(t *testing.T) {
	r := CreateOrderRequest{CustomerFirstName: " Abebe ", CustomerFatherName: "Kebede ", MachineType: " Grain Mill",
		MachinePrice: 150000, Prepayment: 50000, DeliveryDate: "2024-07-25"}
	d := r.ToDraft()
	if d.CustomerFirstName != "Abebe" || d.CustomerFatherName != "Kebede" || d.MachineType != "Grain Mill" {
		t.Fatalf("names should be trimmed, got %+v", d)
	}
	if d.DeliveryDate != "2024-07-25" || d.MachinePrice != 150000 {
		t.Fatalf("unexpected draft %+v", d)
	}
}

func TestPaymentRequest_ToPayment(t *testing.T) {
	p, err := PaymentRequest{Amount: 1000, Date: " 2024-07-01 ", ReceiptName: "r.pdf"}.ToPayment()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Date != "2024-07-01" || p.Amount != 1000 || p.ReceiptName != "r.pdf" {
		t.Fatalf("unexpected payment %+v", p)
	}

	if _, err := (PaymentRequest{Amount: 1000, Date: "01/07/2024"}).ToPayment(); !errors.Is(err, ErrInvalidPaymentDate) {
		t.Fatalf("expected ErrInvalidPaymentDate, got %v", err)
	}
}

func TestCompleteTrainingRequest_ToCertificate(t *testing.T) {
	cases := []struct {
		name    string
		req     CompleteTrainingRequest
		kind    entities.CertificateKind
		wantErr error
	}{
		{"upload", CompleteTrainingRequest{CertificateFile: "data:application/pdf;base64,JVBERi0="}, entities.CertificateUploaded, nil},
		{"generate flag", CompleteTrainingRequest{Generate: true, CertificateID: "CERT-1"}, entities.CertificateGenerated, nil},
		{"marker", CompleteTrainingRequest{CertificateFile: entities.GeneratedCertificateMarker}, entities.CertificateGenerated, nil},
		{"both", CompleteTrainingRequest{Generate: true, CertificateFile: "data:application/pdf;base64,JVBERi0="}, entities.CertificateNone, ErrAmbiguousCertificate},
		{"neither", CompleteTrainingRequest{CertificateFile: "  "}, entities.CertificateNone, ErrCertificateRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cert, err := tc.req.ToCertificate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if cert.Kind != tc.kind {
				t.Fatalf("expected kind %d, got %d", tc.kind, cert.Kind)
			}
		})
	}

	cert, _ := CompleteTrainingRequest{Generate: true, CertificateIssueDate: " 2024-06-02", CertificateID: "CERT-9 "}.ToCertificate()
	if cert.IssueDate != "2024-06-02" || cert.ID != "CERT-9" {
		t.Fatalf("unexpected certificate %+v", cert)
	}
}
