package profiles

import (
	"context"
	"fmt"
	"sync"

	"github.com/rikalg22/surat-lamaran-api/internal/models"
)

// Mock implements Repository in memory for unit tests. Err, when set, is
// returned by every operation. Call counters let tests assert that an
// operation was (or was not) attempted.
type Mock struct {
	mu sync.Mutex

	Err      error
	Profiles []models.Profile

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// NewMock creates an empty mock repository.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) List(_ context.Context) ([]models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Profile, len(m.Profiles))
	copy(out, m.Profiles)
	return out, nil
}

func (m *Mock) Create(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Profiles {
		if existing.ID == p.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
	}
	m.Profiles = append(m.Profiles, *p)
	return nil
}

func (m *Mock) Update(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Profiles {
		if existing.ID == p.ID {
			m.Profiles[i] = *p
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
	for i, existing := range m.Profiles {
		if existing.ID == id {
			m.Profiles = append(m.Profiles[:i], m.Profiles[i+1:]...)
			break
		}
	}
	return nil
}

// Compile-time interface check
var _ Repository = (*Mock)(nil)
