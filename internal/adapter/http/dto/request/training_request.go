package request

import (
	"antenna_ops/internal/domain/entities"
	"errors"
	"strings"
)

var (
	ErrCertificateRequired  = errors.New("certificate file or generate flag is required")
	ErrAmbiguousCertificate = errors.New("certificate cannot be both uploaded and generated")
)

// CompleteTrainingRequest either uploads a certificate file or asks for one to be generated.
// certificateFile == "SYSTEM_GENERATED" is accepted as the generate flag.
type CompleteTrainingRequest struct {
	CertificateFile      string `json:"certificateFile"`
	Generate             bool   `json:"generate"`
	CertificateIssueDate string `json:"certificateIssueDate"`
	CertificateID        string `json:"certificateId"`
}

func (r CompleteTrainingRequest) ToCertificate() (entities.Certificate, error) {
	file := strings.TrimSpace(r.CertificateFile)
	generate := r.Generate || file == entities.GeneratedCertificateMarker
	switch {
	case generate && file != "" && file != entities.GeneratedCertificateMarker:
		return entities.Certificate{}, ErrAmbiguousCertificate
	case generate:
		return entities.GeneratedCertificate(entities.Date(strings.TrimSpace(r.CertificateIssueDate)), strings.TrimSpace(r.CertificateID)), nil
	case file != "":
		return entities.UploadedCertificate(entities.Attachment(file)), nil
	}
	return entities.Certificate{}, ErrCertificateRequired
}

// TrainingPrefillQuery names the product a new registration starts from.
type TrainingPrefillQuery struct {
	ProductID string `form:"productId" binding:"required"`
}
