package entities

import (
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vincent-petithory/dataurl"
)

var ErrInvalidAttachment = errors.New("invalid attachment data uri")

// AttachmentKind drives how a consumer renders a file.
type AttachmentKind string

const (
	AttachmentKindNone  AttachmentKind = ""
	AttachmentKindImage AttachmentKind = "image"
	AttachmentKindPDF   AttachmentKind = "pdf"
	AttachmentKindOther AttachmentKind = "other"
)

// Attachment is a self-describing file stored inline as `data:<mime>;base64,<payload>`.
//
// Storage model:
//   - no blob store; the data URI lives inside the JSON record of its owner
//   - an empty Attachment means "no file"
type Attachment string

// NewAttachment encodes raw bytes as a base64 data URI. An empty mediaType is sniffed.
func NewAttachment(data []byte, mediaType string) Attachment {
	if strings.TrimSpace(mediaType) == "" {
		mediaType = mimetype.Detect(data).String()
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return Attachment(dataurl.New(data, mediaType).String())
}

func (a Attachment) Present() bool {
	return strings.TrimSpace(string(a)) != ""
}

// MIMEType reads the declared type from the data URI prefix without decoding the payload.
func (a Attachment) MIMEType() string {
	s := string(a)
	if !strings.HasPrefix(s, "data:") {
		return ""
	}
	end := strings.IndexAny(s, ";,")
	if end < 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s[len("data:"):end]))
}

// Decode returns the payload and its effective MIME type. When the declared type is
// missing or generic the payload is sniffed.
func (a Attachment) Decode() ([]byte, string, error) {
	if !a.Present() {
		return nil, "", ErrInvalidAttachment
	}
	du, err := dataurl.DecodeString(string(a))
	if err != nil {
		return nil, "", ErrInvalidAttachment
	}
	mt := strings.ToLower(du.MediaType.ContentType())
	if mt == "" || mt == "application/octet-stream" || mt == "text/plain" {
		mt = mimetype.Detect(du.Data).String()
		if i := strings.IndexByte(mt, ';'); i >= 0 {
			mt = mt[:i]
		}
	}
	return du.Data, mt, nil
}

// Kind classifies the attachment from its declared MIME prefix.
func (a Attachment) Kind() AttachmentKind {
	if !a.Present() {
		return AttachmentKindNone
	}
	mt := a.MIMEType()
	switch {
	case strings.HasPrefix(mt, "image/"):
		return AttachmentKindImage
	case mt == "application/pdf":
		return AttachmentKindPDF
	}
	return AttachmentKindOther
}

// LabeledAttachment names a document field of a record for listings and exports.
type LabeledAttachment struct {
	Label string     `json:"label"`
	File  Attachment `json:"file,omitempty"`
}
