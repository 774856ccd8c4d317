package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(
		[]domain.MenuOption{
			{ID: "A", DisplayName: "Almuerzo A", Icon: "🍱", TodaySpecific: "Arroz con menestra"},
			{ID: "SOPA", DisplayName: "Sopa del día", Icon: "🥣"},
		},
		[]domain.MenuOption{
			{ID: "JUGO", DisplayName: "Jugo natural", Icon: "🧃"},
		},
	)
	require.NoError(t, err)
	return catalog
}

func TestComposeMessage_Executable(t *testing.T) {
	catalog := testCatalog(t)
	order := domain.NewOrder().SetBaseQuantity("A", 2)
	state := domain.NewClockState(weekdayAt(690))
	result := domain.Evaluate(order, state)

	require.Equal(t, domain.ExecutableNow, result.Executability)
	require.Equal(t, "12:00", *result.AssignedDispatchTime)
	require.Equal(t, 1, result.Points)

	msg, ok := domain.ComposeMessage(order, result, state, catalog)
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(msg, "*🍽️ PEDIDO DE ALMUERZO*"))
	assert.Contains(t, msg, "📅 Fecha: 6/3/2024")
	assert.Contains(t, msg, "⏰ Hora: 11:30")
	assert.Contains(t, msg, "• 2 × 🍱 Almuerzo A — Arroz con menestra\n")
	assert.Contains(t, msg, "🚚 *Despacho estimado:* 12:00")
	assert.Contains(t, msg, "⭐ *Puntos:* 1")
	assert.NotContains(t, msg, "EXTRAS")
	assert.NotContains(t, msg, "fuera de horario")
	assert.True(t, strings.HasSuffix(msg, "_Enviado desde la app de pedidos_"))
}

func TestComposeMessage_OutsideHours(t *testing.T) {
	catalog := testCatalog(t)
	order := domain.NewOrder().
		SetBaseQuantity("SOPA", 1).
		ToggleExtra("JUGO")
	state := domain.NewClockState(weekdayAt(900))
	result := domain.Evaluate(order, state)

	msg, ok := domain.ComposeMessage(order, result, state, catalog)
	require.True(t, ok)

	assert.Contains(t, msg, "• 1 × 🥣 Sopa del día\n")
	assert.Contains(t, msg, "*➕ EXTRAS:*\n• 🧃 Jugo natural\n")
	assert.Contains(t, msg, "⚠️ *Nota:* Pedido fuera de horario regular")
	assert.NotContains(t, msg, "Despacho estimado")
	assert.NotContains(t, msg, "Puntos")
}

func TestComposeMessage_EmptyOrder(t *testing.T) {
	catalog := testCatalog(t)
	order := domain.NewOrder().ToggleExtra("JUGO")
	state := domain.NewClockState(weekdayAt(690))

	msg, ok := domain.ComposeMessage(order, domain.Evaluate(order, state), state, catalog)
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestComposeMessage_SkipsUnknownIDs(t *testing.T) {
	catalog := testCatalog(t)
	order := domain.NewOrder().SetBaseQuantity("A", 1).SetBaseQuantity("GONE", 3).ToggleExtra("GONE")
	state := domain.NewClockState(time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC))

	msg, ok := domain.ComposeMessage(order, domain.Evaluate(order, state), state, catalog)
	require.True(t, ok)
	assert.NotContains(t, msg, "GONE")
	assert.Contains(t, msg, "⭐ *Puntos:* 3")
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		options []domain.MenuOption
		extras  []domain.MenuOption
		wantErr bool
	}{
		{
			name:    "valid",
			options: []domain.MenuOption{{ID: "A", DisplayName: "A", Icon: "🍱"}},
			extras:  []domain.MenuOption{{ID: "A", DisplayName: "A", Icon: "🧃"}},
		},
		{
			name:    "missing icon",
			options: []domain.MenuOption{{ID: "A", DisplayName: "A"}},
			wantErr: true,
		},
		{
			name:    "missing id",
			extras:  []domain.MenuOption{{DisplayName: "A", Icon: "🧃"}},
			wantErr: true,
		},
		{
			name: "duplicated option",
			options: []domain.MenuOption{
				{ID: "A", DisplayName: "A", Icon: "🍱"},
				{ID: "A", DisplayName: "B", Icon: "🍛"},
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			catalog, err := domain.NewCatalog(test.options, test.extras)
			if test.wantErr {
				assert.ErrorIs(t, err, domain.ErrCatalogInvalid)
				assert.Nil(t, catalog)
				return
			}
			require.NoError(t, err)
			assert.True(t, catalog.HasOption("A"))
			assert.True(t, catalog.HasExtra("A"))
			assert.False(t, catalog.HasOption("B"))
		})
	}
}
