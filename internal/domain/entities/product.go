package entities

import (
	"strconv"
	"strings"
)

// Sector is the top level of the product taxonomy.
type Sector string

const (
	SectorMachineManufacturing Sector = "Machine Manufacturing"
	SectorRawMaterialSupply    Sector = "Raw Material Supply"
	SectorMachineryImport      Sector = "Machinery Import"
	SectorBusinessConsultancy  Sector = "Business Consultancy"
	SectorTraining             Sector = "Training"
)

var Sectors = []Sector{
	SectorMachineManufacturing,
	SectorRawMaterialSupply,
	SectorMachineryImport,
	SectorBusinessConsultancy,
	SectorTraining,
}

func (s Sector) Valid() bool {
	for _, v := range Sectors {
		if v == s {
			return true
		}
	}
	return false
}

type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product is a catalog entry classified Sector -> Category -> ItemGroup -> Name.
//
// There is no taxonomy table: categories and item groups are whatever distinct values
// exist among products. Orders and trainings copy product values at prefill time and
// never hold a reference, so deletion needs no integrity check.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ItemGroup        string          `json:"itemGroup"`
	Model            string          `json:"model"`
	ShortDescription string          `json:"shortDescription"`
	FullDescription  string          `json:"fullDescription"`
	Category         string          `json:"category"`
	Sector           Sector          `json:"sector"`
	Price            *int64          `json:"price,omitempty"`
	Images           []Attachment    `json:"images"`
	VideoURL         string          `json:"videoUrl,omitempty"`
	CatalogFile      Attachment      `json:"catalogFile,omitempty"`
	CatalogFileName  string          `json:"catalogFileName,omitempty"`
	TrainingManual   Attachment      `json:"trainingManual,omitempty"`
	Features         []string        `json:"features"`
	Specifications   []Specification `json:"specifications"`
	UseCases         []string        `json:"useCases"`
	Troubleshooting  string          `json:"troubleshooting"`
}

// VideoKind tells an embeddable link from an uploaded clip.
type VideoKind string

const (
	VideoNone     VideoKind = ""
	VideoEmbed    VideoKind = "embed"
	VideoUploaded VideoKind = "uploaded"
)

func (p Product) Video() VideoKind {
	v := strings.TrimSpace(p.VideoURL)
	switch {
	case v == "":
		return VideoNone
	case strings.HasPrefix(v, "data:"):
		return VideoUploaded
	}
	return VideoEmbed
}

// HasTrainingManual is true only for Training-sector products carrying a manual.
func (p Product) HasTrainingManual() bool {
	return p.Sector == SectorTraining && p.TrainingManual.Present()
}

func (p Product) Documents() []LabeledAttachment {
	docs := make([]LabeledAttachment, 0, len(p.Images)+2)
	for i, img := range p.Images {
		label := "Product Image"
		if len(p.Images) > 1 {
			label = "Product Image " + strconv.Itoa(i+1)
		}
		docs = append(docs, LabeledAttachment{Label: label, File: img})
	}
	docs = append(docs, LabeledAttachment{Label: "Catalog", File: p.CatalogFile})
	if p.Sector == SectorTraining {
		docs = append(docs, LabeledAttachment{Label: "Training Manual", File: p.TrainingManual})
	}
	if p.Video() == VideoUploaded {
		docs = append(docs, LabeledAttachment{Label: "Video", File: Attachment(p.VideoURL)})
	}
	return docs
}

// Normalize replaces nil lists with empty ones so the persisted JSON always carries arrays.
func (p Product) Normalize() Product {
	if p.Images == nil {
		p.Images = []Attachment{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = []Specification{}
	}
	if p.UseCases == nil {
		p.UseCases = []string{}
	}
	return p
}
