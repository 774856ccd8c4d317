package port

import (
	"context"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
)

type Service interface {
	Start(ctx context.Context) error
	Stop()

	AdjustBase(id string, delta int) error
	ToggleExtra(id string) error
	ResetOrder() error
	Submit(ctx context.Context, ui Interaction) (*domain.Receipt, error)

	SaveConfiguration(ctx context.Context, number string) error
	Configuration() string

	Catalog() *domain.Catalog
	Snapshot() domain.Snapshot
	Status() domain.SystemStatus
}
