package leads

import (
	"context"
	"errors"
	"sync"
)

type failingRepository struct {
	calls int
}

func (f *failingRepository) Create(context.Context, CreateLeadInput) (*Lead, error) {
	f.calls++
	return nil, errors.New("connection refused")
}

type recordingSink struct {
	mu    sync.Mutex
	name  string
	err   error
	leads []*Lead
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Write(_ context.Context, lead *Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}

func strPtr(v string) *string { return &v }
