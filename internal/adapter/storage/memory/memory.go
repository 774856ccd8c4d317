package memory

import (
	"context"
	"sync"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
)

// Repository keeps settings in process memory, for runs without a database.
type Repository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewRepository() *Repository {
	return &Repository{values: make(map[string]string)}
}

func (r *Repository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return "", domain.ErrDataNotFound
	}
	return v, nil
}

func (r *Repository) Set(_ context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}
