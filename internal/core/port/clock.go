package port

import (
	"time"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
)

//go:generate mockgen -source=clock.go -destination=mock/clock.go -package=mock
type Clock interface {
	Now() time.Time
}

type CatalogSource interface {
	Load() (*domain.Catalog, error)
}
