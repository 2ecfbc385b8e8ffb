package entities

// LetterStatus is set by hand; no transition rules apply.
type LetterStatus string

const (
	LetterStatusNew        LetterStatus = "New"
	LetterStatusInProgress LetterStatus = "In Progress"
	LetterStatusResolved   LetterStatus = "Resolved"
)

func (s LetterStatus) Valid() bool {
	switch s {
	case LetterStatusNew, LetterStatusInProgress, LetterStatusResolved:
		return true
	}
	return false
}

// Letter is an inbound correspondence log entry with one required scanned file.
type Letter struct {
	ID           string       `json:"id"`
	SenderName   string       `json:"senderName"`
	SenderPhone  string       `json:"senderPhone"`
	Subject      string       `json:"subject"`
	DateReceived Date         `json:"dateReceived"`
	LetterFile   Attachment   `json:"letterFile"`
	FileName     string       `json:"fileName"`
	Status       LetterStatus `json:"status"`
	Notes        string       `json:"notes,omitempty"`
}

type LetterDraft struct {
	SenderName   string     `json:"senderName"`
	SenderPhone  string     `json:"senderPhone"`
	Subject      string     `json:"subject"`
	DateReceived Date       `json:"dateReceived"`
	LetterFile   Attachment `json:"letterFile"`
	FileName     string     `json:"fileName"`
	Notes        string     `json:"notes,omitempty"`
}

func (d LetterDraft) ToLetter(id string) Letter {
	return Letter{
		ID:           id,
		SenderName:   d.SenderName,
		SenderPhone:  d.SenderPhone,
		Subject:      d.Subject,
		DateReceived: d.DateReceived,
		LetterFile:   d.LetterFile,
		FileName:     d.FileName,
		Status:       LetterStatusNew,
		Notes:        d.Notes,
	}
}
