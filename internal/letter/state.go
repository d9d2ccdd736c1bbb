// Package letter models the single in-session job-application letter being
// composed: its header, connective sentences, body paragraphs, personal-data
// table, attachment list and closing block, together with the field
// synchronization rules between them.
package letter

import (
	"strings"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// PlaceholderName is used when no detail row carries a "nama" label.
const PlaceholderName = "Tanpa Nama"

// Header is the letter's opening block. All fields are free text.
type Header struct {
	CityDate         string `json:"cityDate"`
	LabelSubject     string `json:"labelSubject"`
	Subject          string `json:"subject"`
	LabelTo          string `json:"labelTo"`
	RecipientTitle   string `json:"recipientTitle"`
	CompanyName      string `json:"companyName"`
	RecipientAddress string `json:"recipientAddress"`
}

// Structure holds the connective sentences between the letter's blocks.
type Structure struct {
	Greeting        string `json:"greeting"`
	DataIntro       string `json:"dataIntro"`
	AttachmentIntro string `json:"attachmentIntro"`
}

// Closing is the letter's sign-off block. SignerName tracks the "nama"
// detail row.
type Closing struct {
	Intro      string `json:"intro"`
	Greeting   string `json:"greeting"`
	SignerName string `json:"signerName"`
}

// State is the live editing session. It is not persisted as such; profiles
// snapshot only the details and attachments.
type State struct {
	Header         Header
	Structure      Structure
	BodyParagraphs []string
	Details        []models.DetailRow
	Attachments    []models.AttachmentItem
	Closing        Closing
}

// DefaultState returns the letter content a fresh session starts with.
func DefaultState() State {
	return State{
		Header: Header{
			CityDate:         "Manado, 6 Februari 2026",
			LabelSubject:     "Perihal",
			Subject:          "Lamaran Pekerjaan",
			LabelTo:          "Yth.",
			RecipientTitle:   "Bapak/Ibu HRD",
			CompanyName:      "PT Teknologi Masa Depan",
			RecipientAddress: "di Tempat",
		},
		Structure: Structure{
			Greeting:        "Dengan hormat,",
			DataIntro:       "Adapun data diri saya sebagai berikut:",
			AttachmentIntro: "Sebagai bahan pertimbangan, saya lampirkan:",
		},
		BodyParagraphs: []string{
			"Berdasarkan informasi yang saya peroleh...",
			"Melalui surat ini saya bermaksud untuk melamar...",
			"Saya memiliki kemampuan adaptasi yang cepat...",
		},
		Details: []models.DetailRow{
			{ID: "1", Label: "Nama", Value: "Frendy Rikal Gerung", IsBold: true},
			{ID: "2", Label: "Tempat, Tgl. Lahir", Value: "Raanan Baru, 22 Februari 2002"},
			{ID: "3", Label: "Pendidikan Terakhir", Value: "S1 Teknik Informatika"},
			{ID: "4", Label: "Alamat", Value: "Raanan Baru Satu Jaga IV"},
			{ID: "5", Label: "No. Telepon", Value: "0852-9893-7694"},
			{ID: "6", Label: "Email", Value: "frendegerung634@gmail.com"},
		},
		Attachments: []models.AttachmentItem{
			{ID: "1", Text: "Daftar Riwayat Hidup (CV)", IsChecked: true},
			{ID: "2", Text: "Portofolio", IsChecked: true},
			{ID: "3", Text: "Fotokopi Ijazah", IsChecked: true},
			{ID: "4", Text: "Pas Foto Terbaru", IsChecked: true},
		},
		Closing: Closing{
			Intro:      "Besar harapan saya...",
			Greeting:   "Hormat Saya,",
			SignerName: "Frendy Rikal Gerung",
		},
	}
}

// NewProfileSeed returns the six standard empty rows a freshly created
// profile starts with. The sequence is never empty by construction.
func NewProfileSeed() []models.DetailRow {
	return []models.DetailRow{
		{ID: "1", Label: "Nama", Value: "", IsBold: true},
		{ID: "2", Label: "Tempat, Tgl. Lahir", Value: ""},
		{ID: "3", Label: "Pendidikan Terakhir", Value: ""},
		{ID: "4", Label: "Alamat", Value: ""},
		{ID: "5", Label: "No. Telepon", Value: ""},
		{ID: "6", Label: "Email", Value: ""},
	}
}

// FullNameFromDetails derives the display name from the first row whose label
// contains "nama" (case-insensitive). Falls back to PlaceholderName.
func FullNameFromDetails(details []models.DetailRow) string {
	for _, d := range details {
		if isNameLabel(d.Label) && d.Value != "" {
			return d.Value
		}
	}
	return PlaceholderName
}

func isNameLabel(label string) bool {
	return strings.Contains(strings.ToLower(label), "nama")
}

func cloneDetails(rows []models.DetailRow) []models.DetailRow {
	if rows == nil {
		return nil
	}
	out := make([]models.DetailRow, len(rows))
	copy(out, rows)
	return out
}

func cloneAttachments(items []models.AttachmentItem) []models.AttachmentItem {
	if items == nil {
		return nil
	}
	out := make([]models.AttachmentItem, len(items))
	copy(out, items)
	return out
}
