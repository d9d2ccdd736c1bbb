package signature

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
	"github.com/rikalg22/surat-lamaran-api/internal/storage/signatures"
	"github.com/rikalg22/surat-lamaran-api/internal/ui"
)

// ErrEmptySignature rejects saving before anything was drawn or uploaded.
var ErrEmptySignature = errors.New("signature surface is empty")

const (
	msgEmptySurface = "Area tanda tangan kosong!"
	msgSigSaved     = "Tanda tangan tersimpan!"
	msgSigSaveFail  = "Gagal menyimpan."
	msgRenameFail   = "Gagal rename"
	msgDeleteFail   = "Gagal hapus"

	promptSigName        = "Beri nama tanda tangan ini:"
	promptSigPlaceholder = "TTD Digital"
	confirmDeleteSig     = "Hapus tanda tangan ini permanen?"
)

// Pipeline owns the drawing surface, the single "current signature" slot the
// letter preview composites, and the saved-signature collection. Like the
// letter session it serves one user and is not safe for concurrent use.
type Pipeline struct {
	pad     *Pad
	current string
	saved   []models.Signature
	repo    signatures.Repository
	ports   ui.Ports
}

// NewPipeline returns a pipeline with an empty surface and no selection.
func NewPipeline(repo signatures.Repository, ports ui.Ports) *Pipeline {
	return &Pipeline{pad: NewPad(), repo: repo, ports: ports}
}

// Pad exposes the drawing surface.
func (p *Pipeline) Pad() *Pad {
	return p.pad
}

// Current returns the active signature data URI, or "" when none is set.
func (p *Pipeline) Current() string {
	return p.current
}

// Saved returns the in-memory signature collection.
func (p *Pipeline) Saved() []models.Signature {
	return p.saved
}

// BeginStroke starts a freehand stroke.
func (p *Pipeline) BeginStroke(pt Point) {
	p.pad.BeginStroke(pt)
}

// ExtendStroke continues the stroke in progress.
func (p *Pipeline) ExtendStroke(pt Point) {
	p.pad.ExtendStroke(pt)
}

// EndStroke finalizes the stroke and refreshes the current signature from the
// surface, the same way lifting the pen snapshots the canvas.
func (p *Pipeline) EndStroke() error {
	p.pad.EndStroke()
	if p.pad.Empty() {
		return nil
	}
	_, err := p.CaptureSurface()
	return err
}

// CaptureSurface serializes the surface to a PNG data URI and makes it the
// current signature. This is the only path from strokes to a usable image.
func (p *Pipeline) CaptureSurface() (string, error) {
	img, err := p.pad.Capture()
	if err != nil {
		return "", err
	}
	p.current = img
	return img, nil
}

// ClearSurface erases the strokes and drops the current signature with them:
// clearing the pad also clears the selection.
func (p *Pipeline) ClearSurface() {
	p.pad.Clear()
	p.current = ""
}

// UploadImage wraps an uploaded file's bytes as a data URI and sets it as the
// current signature directly, bypassing the drawing surface. The bytes are
// not validated; the MIME type is sniffed for the URI header only.
func (p *Pipeline) UploadImage(data []byte) string {
	mime := http.DetectContentType(data)
	img := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	p.current = img
	return img
}

// Refresh reloads the saved collection from storage. On failure the list is
// left empty.
func (p *Pipeline) Refresh(ctx context.Context) error {
	list, err := p.repo.List(ctx)
	if err != nil {
		p.saved = nil
		return err
	}
	p.saved = list
	return nil
}

// SaveCurrent persists the current signature under a name prompted from the
// user. An empty surface is rejected before any store call; a cancelled or
// empty prompt aborts silently. The in-memory list grows only after the
// store accepts the row.
func (p *Pipeline) SaveCurrent(ctx context.Context) (*models.Signature, error) {
	if p.current == "" {
		p.ports.Notify(msgEmptySurface)
		return nil, ErrEmptySignature
	}
	name, ok := p.ports.Prompt(promptSigName, promptSigPlaceholder)
	if !ok || name == "" {
		return nil, nil
	}

	sig := &models.Signature{ID: uuid.NewString(), Name: name, Image: p.current}
	if err := p.repo.Create(ctx, sig); err != nil {
		p.ports.Notify(msgSigSaveFail)
		return nil, fmt.Errorf("failed to save signature: %w", err)
	}
	p.saved = append(p.saved, *sig)
	p.ports.Notify(msgSigSaved)
	return sig, nil
}

// Select makes a saved signature the current one without mutating the
// collection. An unknown id is a no-op.
func (p *Pipeline) Select(id string) {
	for _, s := range p.saved {
		if s.ID == id {
			p.current = s.Image
			return
		}
	}
}

// Rename updates a saved signature's name. The list entry changes only after
// the store call succeeds.
func (p *Pipeline) Rename(ctx context.Context, id, name string) error {
	if err := p.repo.Rename(ctx, id, name); err != nil {
		p.ports.Notify(msgRenameFail)
		return fmt.Errorf("failed to rename signature: %w", err)
	}
	for i, s := range p.saved {
		if s.ID == id {
			p.saved[i].Name = name
			break
		}
	}
	return nil
}

// Delete permanently removes a saved signature after confirmation.
func (p *Pipeline) Delete(ctx context.Context, id string) error {
	if !p.ports.Confirm(confirmDeleteSig) {
		return nil
	}
	if err := p.repo.Delete(ctx, id); err != nil {
		p.ports.Notify(msgDeleteFail)
		return fmt.Errorf("failed to delete signature: %w", err)
	}
	for i, s := range p.saved {
		if s.ID == id {
			p.saved = append(p.saved[:i], p.saved[i+1:]...)
			break
		}
	}
	return nil
}
