package letter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// ErrImport marks a clipboard import whose text was not valid JSON. The
// session state is guaranteed untouched when it is returned.
var ErrImport = errors.New("pasted text is not valid JSON")

// importPayload mirrors the reply contract the generated prompt asks the
// assistant for. Every key is optional; unknown keys are ignored.
type importPayload struct {
	Header     *headerPatch       `json:"header"`
	Paragraphs []string           `json:"paragraphs"`
	Details    []models.DetailRow `json:"details"`
	Closing    *closingPatch      `json:"closing"`
}

// headerPatch carries field-level header overrides. Pointer fields
// distinguish "absent" from "set to empty".
type headerPatch struct {
	CityDate         *string `json:"cityDate"`
	LabelSubject     *string `json:"labelSubject"`
	Subject          *string `json:"subject"`
	LabelTo          *string `json:"labelTo"`
	RecipientTitle   *string `json:"recipientTitle"`
	CompanyName      *string `json:"companyName"`
	RecipientAddress *string `json:"recipientAddress"`
}

type closingPatch struct {
	Intro      *string `json:"intro"`
	Greeting   *string `json:"greeting"`
	SignerName *string `json:"signerName"`
}

// ImportFromJSON parses an assistant reply and merges it into the session.
// header and closing merge field by field; paragraphs and details, when
// present, replace their sequences wholesale. Malformed input changes
// nothing.
func (s *Service) ImportFromJSON(text string) error {
	var payload importPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}

	if payload.Header != nil {
		applyHeaderPatch(&s.state.Header, payload.Header)
	}
	if payload.Paragraphs != nil {
		s.state.BodyParagraphs = payload.Paragraphs
	}
	if payload.Details != nil {
		s.state.Details = payload.Details
	}
	if payload.Closing != nil {
		applyClosingPatch(&s.state.Closing, payload.Closing)
	}
	return nil
}

func applyHeaderPatch(h *Header, p *headerPatch) {
	if p.CityDate != nil {
		h.CityDate = *p.CityDate
	}
	if p.LabelSubject != nil {
		h.LabelSubject = *p.LabelSubject
	}
	if p.Subject != nil {
		h.Subject = *p.Subject
	}
	if p.LabelTo != nil {
		h.LabelTo = *p.LabelTo
	}
	if p.RecipientTitle != nil {
		h.RecipientTitle = *p.RecipientTitle
	}
	if p.CompanyName != nil {
		h.CompanyName = *p.CompanyName
	}
	if p.RecipientAddress != nil {
		h.RecipientAddress = *p.RecipientAddress
	}
}

func applyClosingPatch(c *Closing, p *closingPatch) {
	if p.Intro != nil {
		c.Intro = *p.Intro
	}
	if p.Greeting != nil {
		c.Greeting = *p.Greeting
	}
	if p.SignerName != nil {
		c.SignerName = *p.SignerName
	}
}
