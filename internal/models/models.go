// Package models holds the domain records shared by the storage layer, the
// letter session and the HTTP surface. Field names follow the wire format the
// frontend expects.
package models

// DetailRow is one line of the letter's personal-data table. Labels are free
// text and not unique; row order is meaningful.
type DetailRow struct {
	ID     string `json:"id" doc:"Row identifier" example:"1"`
	Label  string `json:"label" doc:"Row label" example:"Nama"`
	Value  string `json:"value" doc:"Row value" example:"Frendy Rikal Gerung"`
	IsBold bool   `json:"isBold,omitempty" doc:"Render the value in bold"`
}

// AttachmentItem is a checkable line item listing an enclosed document. Only
// checked items render in the printed letter.
type AttachmentItem struct {
	ID        string `json:"id" doc:"Item identifier" example:"1"`
	Text      string `json:"text" doc:"Document name" example:"Daftar Riwayat Hidup (CV)"`
	IsChecked bool   `json:"isChecked" doc:"Include in the printed letter"`
}

// Profile is a reusable bundle of applicant data. Attachments are optional:
// a profile without them leaves the current attachment list untouched when
// loaded.
type Profile struct {
	ID          string           `json:"id" doc:"Opaque unique identifier"`
	ProfileName string           `json:"profileName" doc:"Label shown in selection lists"`
	FullName    string           `json:"fullName" doc:"Display name derived from the nama detail row"`
	Details     []DetailRow      `json:"details" doc:"Ordered personal-detail rows"`
	Attachments []AttachmentItem `json:"attachments,omitempty" doc:"Optional attachment list"`
}

// Signature is a named raster image usable as the letter's handwritten
// signature stand-in. Image is a self-contained data URI.
type Signature struct {
	ID    string `json:"id" doc:"Opaque unique identifier"`
	Name  string `json:"name" doc:"Display name"`
	Image string `json:"image" doc:"PNG data URI"`
}

// JobTarget describes the vacancy the prompt generator writes for.
type JobTarget struct {
	Position     string `json:"position"`
	Company      string `json:"company"`
	Requirements string `json:"requirements"`
}
