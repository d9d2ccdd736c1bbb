package letter

import (
	"fmt"
	"strings"
)

// PromptStyle selects the letter length the assistant is asked for.
type PromptStyle string

const (
	PromptNormal PromptStyle = "normal"
	PromptShort  PromptStyle = "short"
)

const msgPromptCopied = "Prompt disalin!"

// GeneratePrompt renders the assistant prompt from the current detail rows,
// the checked attachments and the job target. Pure function of session state;
// no network call is ever made.
func (s *Service) GeneratePrompt() string {
	var personal []string
	for _, d := range s.state.Details {
		personal = append(personal, fmt.Sprintf("- %s: %s", d.Label, d.Value))
	}

	var att []string
	for _, a := range s.state.Attachments {
		if a.IsChecked {
			att = append(att, a.Text)
		}
	}

	style := "Standar (3 paragraf)"
	if s.style == PromptShort {
		style = "SINGKAT (maks 2 paragraf)"
	}

	return fmt.Sprintf(
		"Posisi: %s\nPerusahaan: %s\nSyarat: %s\n\nDATA SAYA:\n%s\nLampiran: %s\n\nINSTRUKSI: Buat surat lamaran %s dalam format JSON valid.",
		s.target.Position,
		s.target.Company,
		s.target.Requirements,
		strings.Join(personal, "\n"),
		strings.Join(att, ", "),
		style,
	)
}

// CopyPrompt writes the generated prompt to the clipboard and notifies the
// user. The reply is pasted back through ImportFromJSON.
func (s *Service) CopyPrompt() error {
	if err := s.ports.CopyText(s.GeneratePrompt()); err != nil {
		return fmt.Errorf("failed to copy prompt: %w", err)
	}
	s.ports.Notify(msgPromptCopied)
	return nil
}
