package port

import (
	"context"
)

// SettingsKeyPhone is the only persisted key.
const SettingsKeyPhone = "whatsapp_number"

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type SettingsRepository interface {
	// Get returns domain.ErrDataNotFound when the key was never set.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
