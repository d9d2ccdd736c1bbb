package letter

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
	"github.com/rikalg22/surat-lamaran-api/internal/storage/profiles"
	"github.com/rikalg22/surat-lamaran-api/internal/ui"
)

// Notification texts shown by profile and list operations.
const (
	msgProfileSaved      = "Profil Tersimpan!"
	msgProfileSaveFailed = "Gagal menyimpan profil."
	msgDeleteFailed      = "Gagal menghapus."
	msgLoadFailed        = "Gagal mengambil data"

	confirmRemoveRow     = "Hapus baris ini?"
	confirmRemoveItem    = "Hapus?"
	confirmDeleteProfile = "Hapus profil ini?"
	confirmResetData     = "Reset Data inputan saat ini?"

	newParagraphText = "Paragraf baru... (Klik untuk edit)"
)

// Service holds one letter editing session. It is single-user by design and
// not safe for concurrent use: all mutations happen from one UI event loop.
type Service struct {
	state    State
	saved    []models.Profile
	repo     profiles.Repository
	ports    ui.Ports
	editMode bool

	target models.JobTarget
	style  PromptStyle
}

// NewService starts a session with the default letter content.
func NewService(repo profiles.Repository, ports ui.Ports) *Service {
	return &Service{
		state: DefaultState(),
		repo:  repo,
		ports: ports,
		style: PromptNormal,
	}
}

// State exposes the live session state for rendering.
func (s *Service) State() *State {
	return &s.state
}

// Profiles returns the in-memory saved-profile list.
func (s *Service) Profiles() []models.Profile {
	return s.saved
}

// RefreshProfiles reloads the saved-profile list from storage. On failure the
// list is left empty and the user is notified; the letter itself is
// untouched.
func (s *Service) RefreshProfiles(ctx context.Context) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.saved = nil
		s.ports.Notify(msgLoadFailed)
		return err
	}
	s.saved = list
	return nil
}

// UpdateDetailValue sets details[index].Value. When the row's label contains
// "nama" the closing block's signer name follows the new value, keeping the
// printed signature block consistent with the data table.
func (s *Service) UpdateDetailValue(index int, value string) {
	if index < 0 || index >= len(s.state.Details) {
		return
	}
	s.state.Details[index].Value = value
	if isNameLabel(s.state.Details[index].Label) {
		s.state.Closing.SignerName = value
	}
}

// UpdateDetailLabel sets details[index].Label.
func (s *Service) UpdateDetailLabel(index int, label string) {
	if index < 0 || index >= len(s.state.Details) {
		return
	}
	s.state.Details[index].Label = label
}

// AddDetailRow appends a placeholder row.
func (s *Service) AddDetailRow() {
	s.state.Details = append(s.state.Details, models.DetailRow{
		ID:    uuid.NewString(),
		Label: "Label Baru",
		Value: "Isi Data...",
	})
}

// RemoveDetailRow deletes a row after user confirmation. Declining leaves the
// sequence untouched.
func (s *Service) RemoveDetailRow(index int) {
	if index < 0 || index >= len(s.state.Details) {
		return
	}
	if !s.ports.Confirm(confirmRemoveRow) {
		return
	}
	s.state.Details = append(s.state.Details[:index], s.state.Details[index+1:]...)
}

// AddParagraph inserts a placeholder paragraph after the given index, or
// appends when the index is negative or past the end.
func (s *Service) AddParagraph(after int) {
	at := len(s.state.BodyParagraphs)
	if after >= 0 && after < len(s.state.BodyParagraphs) {
		at = after + 1
	}
	s.state.BodyParagraphs = append(s.state.BodyParagraphs, "")
	copy(s.state.BodyParagraphs[at+1:], s.state.BodyParagraphs[at:])
	s.state.BodyParagraphs[at] = newParagraphText
}

// RemoveParagraph deletes a paragraph after user confirmation.
func (s *Service) RemoveParagraph(index int) {
	if index < 0 || index >= len(s.state.BodyParagraphs) {
		return
	}
	if !s.ports.Confirm(confirmRemoveRow) {
		return
	}
	s.state.BodyParagraphs = append(s.state.BodyParagraphs[:index], s.state.BodyParagraphs[index+1:]...)
}

// AddAttachment appends an empty, checked item.
func (s *Service) AddAttachment() {
	s.state.Attachments = append(s.state.Attachments, models.AttachmentItem{
		ID:        uuid.NewString(),
		Text:      "",
		IsChecked: true,
	})
}

// RemoveAttachment deletes the item with the given id after confirmation.
func (s *Service) RemoveAttachment(id string) {
	if !s.ports.Confirm(confirmRemoveItem) {
		return
	}
	for i, a := range s.state.Attachments {
		if a.ID == id {
			s.state.Attachments = append(s.state.Attachments[:i], s.state.Attachments[i+1:]...)
			return
		}
	}
}

// ToggleAttachment flips the checked flag of the item with the given id.
func (s *Service) ToggleAttachment(id string) {
	for i, a := range s.state.Attachments {
		if a.ID == id {
			s.state.Attachments[i].IsChecked = !a.IsChecked
			return
		}
	}
}

// UpdateAttachmentText sets the text of the item with the given id.
func (s *Service) UpdateAttachmentText(id, text string) {
	for i, a := range s.state.Attachments {
		if a.ID == id {
			s.state.Attachments[i].Text = text
			return
		}
	}
}

// RenderedAttachments returns the items that appear in the printed letter:
// checked ones, in list order.
func (s *Service) RenderedAttachments() []models.AttachmentItem {
	var out []models.AttachmentItem
	for _, a := range s.state.Attachments {
		if a.IsChecked {
			out = append(out, a)
		}
	}
	return out
}

// LoadProfile replaces the detail rows and signer name from the saved profile
// with the given id, and the attachment list only when the profile defines
// one. Header, body paragraphs and closing intro are never touched. An
// unknown id is a no-op: selecting the blank placeholder option looks exactly
// like this.
func (s *Service) LoadProfile(id string) {
	for _, p := range s.saved {
		if p.ID != id {
			continue
		}
		s.state.Details = cloneDetails(p.Details)
		s.state.Closing.SignerName = p.FullName
		if p.Attachments != nil {
			s.state.Attachments = cloneAttachments(p.Attachments)
		}
		return
	}
}

// SaveCurrentAsProfile snapshots the current details and attachments into a
// new named profile and persists it. The in-memory list grows only after the
// store accepts the row; on failure the user is notified and the session is
// unaffected.
func (s *Service) SaveCurrentAsProfile(ctx context.Context, name string) (*models.Profile, error) {
	p := &models.Profile{
		ID:          uuid.NewString(),
		ProfileName: name,
		FullName:    FullNameFromDetails(s.state.Details),
		Details:     cloneDetails(s.state.Details),
		Attachments: cloneAttachments(s.state.Attachments),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.ports.Notify(msgProfileSaveFailed)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	s.saved = append(s.saved, *p)
	s.ports.Notify(msgProfileSaved)
	return p, nil
}

// CreateProfile makes a fresh profile pre-seeded with the six standard empty
// rows, persists it and appends it to the in-memory list.
func (s *Service) CreateProfile(ctx context.Context, name string) (*models.Profile, error) {
	p := &models.Profile{
		ID:          uuid.NewString(),
		ProfileName: name,
		FullName:    PlaceholderName,
		Details:     NewProfileSeed(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.ports.Notify(msgProfileSaveFailed)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.saved = append(s.saved, *p)
	return p, nil
}

// UpdateProfile replaces a stored profile from the management dialog. The
// full name is re-derived from the edited rows before the row is written, so
// the selection list stays in sync with the nama row.
func (s *Service) UpdateProfile(ctx context.Context, p models.Profile) error {
	p.FullName = FullNameFromDetails(p.Details)
	if err := s.repo.Update(ctx, &p); err != nil {
		s.ports.Notify(msgProfileSaveFailed)
		return fmt.Errorf("failed to update profile: %w", err)
	}
	for i, existing := range s.saved {
		if existing.ID == p.ID {
			s.saved[i] = p
			break
		}
	}
	return nil
}

// DeleteProfile permanently removes a saved profile after confirmation.
// There is no undo.
func (s *Service) DeleteProfile(ctx context.Context, id string) error {
	if !s.ports.Confirm(confirmDeleteProfile) {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.ports.Notify(msgDeleteFailed)
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	for i, p := range s.saved {
		if p.ID == id {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			break
		}
	}
	return nil
}

// ResetData replaces the detail rows and attachment list with a minimal seed
// after confirmation. Header, body and closing are kept.
func (s *Service) ResetData() {
	if !s.ports.Confirm(confirmResetData) {
		return
	}
	s.state.Details = []models.DetailRow{
		{ID: "1", Label: "Nama", Value: "", IsBold: true},
		{ID: "2", Label: "No. HP", Value: ""},
	}
	s.state.Attachments = []models.AttachmentItem{
		{ID: "1", Text: "CV", IsChecked: true},
	}
}

// SetJobTarget records the vacancy the prompt generator writes for.
func (s *Service) SetJobTarget(target models.JobTarget) {
	s.target = target
}

// SetPromptStyle selects between the normal and short letter styles.
func (s *Service) SetPromptStyle(style PromptStyle) {
	s.style = style
}
