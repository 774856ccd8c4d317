package memory

import (
	"context"
	"testing"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	_, err := r.Get(ctx, "whatsapp_number")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)

	require.NoError(t, r.Set(ctx, "whatsapp_number", "0987654321"))
	v, err := r.Get(ctx, "whatsapp_number")
	require.NoError(t, err)
	assert.Equal(t, "0987654321", v)
}
