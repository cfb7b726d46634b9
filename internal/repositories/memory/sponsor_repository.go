package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/eventops/event_finance_app/internal/apperrors"
	"github.com/eventops/event_finance_app/internal/core/domain"
	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
)

// SponsorRepository is the in-memory store for sponsors, keyed by ID with
// insertion order tracked separately.
type SponsorRepository struct {
	mu       sync.RWMutex
	sponsors map[string]domain.Sponsor
	order    []string
}

// NewSponsorRepository creates an empty sponsor repository.
func NewSponsorRepository() *SponsorRepository {
	return &SponsorRepository{
		sponsors: make(map[string]domain.Sponsor),
	}
}

// Ensure SponsorRepository implements the facade
var _ portsrepo.SponsorRepositoryFacade = (*SponsorRepository)(nil)

// SaveSponsor appends a new sponsor.
func (r *SponsorRepository) SaveSponsor(_ context.Context, sponsor domain.Sponsor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sponsors[sponsor.SponsorID]; !exists {
		r.order = append(r.order, sponsor.SponsorID)
	}
	r.sponsors[sponsor.SponsorID] = sponsor
	return nil
}

// FindSponsorByID retrieves a single sponsor.
func (r *SponsorRepository) FindSponsorByID(_ context.Context, sponsorID string) (*domain.Sponsor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sponsor, ok := r.sponsors[sponsorID]
	if !ok {
		return nil, fmt.Errorf("sponsor %s: %w", sponsorID, apperrors.ErrNotFound)
	}
	return &sponsor, nil
}

// ListSponsors returns all sponsors, or only those with the given status
// when status is non-empty, in insertion order.
func (r *SponsorRepository) ListSponsors(_ context.Context, status domain.SponsorshipStatus) ([]domain.Sponsor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Sponsor, 0, len(r.order))
	for _, id := range r.order {
		if sponsor := r.sponsors[id]; status == "" || sponsor.Status == status {
			result = append(result, sponsor)
		}
	}
	return result, nil
}

// UpdateSponsor replaces the stored sponsor with the same ID.
func (r *SponsorRepository) UpdateSponsor(_ context.Context, sponsor domain.Sponsor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sponsors[sponsor.SponsorID]; !ok {
		return fmt.Errorf("sponsor %s: %w", sponsor.SponsorID, apperrors.ErrNotFound)
	}
	r.sponsors[sponsor.SponsorID] = sponsor
	return nil
}

// Clear removes every stored sponsor.
func (r *SponsorRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sponsors = make(map[string]domain.Sponsor)
	r.order = nil
	return nil
}
