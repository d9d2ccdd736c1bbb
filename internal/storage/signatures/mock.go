package signatures

import (
	"context"
	"fmt"
	"sync"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// Mock implements Repository in memory for unit tests. Err, when set, is
// returned by every operation; call counters let tests assert that the store
// was never touched.
type Mock struct {
	mu sync.Mutex

	Err        error
	Signatures []models.Signature

	ListCalls   int
	CreateCalls int
	RenameCalls int
	DeleteCalls int
}

// NewMock creates an empty mock repository.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) List(_ context.Context) ([]models.Signature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Signature, len(m.Signatures))
	copy(out, m.Signatures)
	return out, nil
}

func (m *Mock) Create(_ context.Context, s *models.Signature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Signatures {
		if existing.ID == s.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
	}
	m.Signatures = append(m.Signatures, *s)
	return nil
}

func (m *Mock) Rename(_ context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RenameCalls++
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Signatures {
		if existing.ID == id {
			m.Signatures[i].Name = name
			break
		}
	}
	return nil
}

func (m *Mock) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Signatures {
		if existing.ID == id {
			m.Signatures = append(m.Signatures[:i], m.Signatures[i+1:]...)
			break
		}
	}
	return nil
}

// Compile-time interface check
var _ Repository = (*Mock)(nil)
