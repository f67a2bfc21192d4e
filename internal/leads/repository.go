package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository persists leads in the store of record.
// Callers validate input before Create; implementations trust it.
type Repository interface {
	Create(ctx context.Context, in CreateLeadInput) (*Lead, error)
}

// InMemoryRepository keeps leads in process memory. Used when DATABASE_URL is unset.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads []*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create stores a copy of the input under a fresh id.
func (r *InMemoryRepository) Create(ctx context.Context, in CreateLeadInput) (*Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lead := &Lead{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		BusinessName:  in.BusinessName,
		ContactNumber: in.ContactNumber,
		CreatedAt:     time.Now().UTC(),
	}

	r.mu.Lock()
	r.leads = append(r.leads, lead)
	r.mu.Unlock()

	return lead, nil
}

// All returns the stored leads in insertion order.
func (r *InMemoryRepository) All() []*Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Lead, len(r.leads))
	copy(out, r.leads)
	return out
}
