package entities

import "encoding/json"

type TrainingStatus string

const (
	TrainingStatusOngoing   TrainingStatus = "Ongoing"
	TrainingStatusCompleted TrainingStatus = "Completed"
)

var trainingTransitions = map[TrainingStatus][]TrainingStatus{
	TrainingStatusOngoing: {TrainingStatusCompleted},
}

func (s TrainingStatus) CanTransitionTo(next TrainingStatus) bool {
	for _, allowed := range trainingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentState string

const (
	PaymentStatePaid   PaymentState = "Paid"
	PaymentStateUnpaid PaymentState = "Unpaid"
)

// GeneratedCertificateMarker is the persisted certificateFile value meaning
// "render the certificate template on demand".
const GeneratedCertificateMarker = "SYSTEM_GENERATED"

// CertificateKind tags the Certificate variant.
type CertificateKind int

const (
	CertificateNone CertificateKind = iota
	CertificateUploaded
	CertificateGenerated
)

// Certificate is either absent, an uploaded file, or a template rendered on demand
// from the trainee and course fields plus IssueDate/ID.
type Certificate struct {
	Kind      CertificateKind
	File      Attachment
	IssueDate Date
	ID        string
}

func UploadedCertificate(file Attachment) Certificate {
	return Certificate{Kind: CertificateUploaded, File: file}
}

func GeneratedCertificate(issueDate Date, certID string) Certificate {
	return Certificate{Kind: CertificateGenerated, IssueDate: issueDate, ID: certID}
}

// Training is a registration for a vocational course.
type Training struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Phone            string         `json:"phone"`
	TrainingType     string         `json:"trainingType"`
	TrainingCategory string         `json:"trainingCategory,omitempty"`
	Payment          PaymentState   `json:"payment"`
	PaymentReceipt   Attachment     `json:"paymentReceipt,omitempty"`
	Status           TrainingStatus `json:"status"`
	DueDate          Date           `json:"dueDate"`
	Certificate      Certificate    `json:"-"`
}

// TrainingDraft carries the caller-supplied fields of a new registration.
type TrainingDraft struct {
	Name             string       `json:"name"`
	Phone            string       `json:"phone"`
	TrainingType     string       `json:"trainingType"`
	TrainingCategory string       `json:"trainingCategory,omitempty"`
	Payment          PaymentState `json:"payment"`
	PaymentReceipt   Attachment   `json:"paymentReceipt,omitempty"`
	DueDate          Date         `json:"dueDate"`
}

func (d TrainingDraft) ToTraining(id string) Training {
	return Training{
		ID:               id,
		Name:             d.Name,
		Phone:            d.Phone,
		TrainingType:     d.TrainingType,
		TrainingCategory: d.TrainingCategory,
		Payment:          d.Payment,
		PaymentReceipt:   d.PaymentReceipt,
		Status:           TrainingStatusOngoing,
		DueDate:          d.DueDate,
	}
}

type trainingAlias Training

// trainingRecord is the persisted layout: the certificate variant is flattened back into
// certificateFile / certificateIssueDate / certificateId.
type trainingRecord struct {
	trainingAlias
	CertificateFile      string `json:"certificateFile,omitempty"`
	CertificateIssueDate Date   `json:"certificateIssueDate,omitempty"`
	CertificateID        string `json:"certificateId,omitempty"`
}

func (t Training) MarshalJSON() ([]byte, error) {
	rec := trainingRecord{trainingAlias: trainingAlias(t)}
	switch t.Certificate.Kind {
	case CertificateUploaded:
		rec.CertificateFile = string(t.Certificate.File)
	case CertificateGenerated:
		rec.CertificateFile = GeneratedCertificateMarker
		rec.CertificateIssueDate = t.Certificate.IssueDate
		rec.CertificateID = t.Certificate.ID
	}
	return json.Marshal(rec)
}

func (t *Training) UnmarshalJSON(b []byte) error {
	var rec trainingRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	*t = Training(rec.trainingAlias)
	switch rec.CertificateFile {
	case "":
		t.Certificate = Certificate{}
	case GeneratedCertificateMarker:
		t.Certificate = GeneratedCertificate(rec.CertificateIssueDate, rec.CertificateID)
	default:
		t.Certificate = UploadedCertificate(Attachment(rec.CertificateFile))
	}
	return nil
}

func (t Training) Documents() []LabeledAttachment {
	docs := []LabeledAttachment{{Label: "Payment Receipt", File: t.PaymentReceipt}}
	if t.Certificate.Kind == CertificateUploaded {
		docs = append(docs, LabeledAttachment{Label: "Certificate File", File: t.Certificate.File})
	}
	return docs
}
