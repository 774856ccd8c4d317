package domain_test

import (
	"testing"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrder_SetBaseQuantity(t *testing.T) {
	type step struct {
		id  string
		qty int
	}
	tests := []struct {
		name     string
		steps    []step
		expBases []domain.BaseSelection
	}{
		{
			name:     "single add",
			steps:    []step{{"A", 2}},
			expBases: []domain.BaseSelection{{ID: "A", Quantity: 2}},
		},
		{
			name:     "last value wins and moves to the end",
			steps:    []step{{"A", 2}, {"B", 1}, {"A", 5}},
			expBases: []domain.BaseSelection{{ID: "B", Quantity: 1}, {ID: "A", Quantity: 5}},
		},
		{
			name:     "zero removes",
			steps:    []step{{"A", 2}, {"A", 0}},
			expBases: []domain.BaseSelection{},
		},
		{
			name:     "negative removes",
			steps:    []step{{"A", 2}, {"B", 3}, {"A", -4}},
			expBases: []domain.BaseSelection{{ID: "B", Quantity: 3}},
		},
		{
			name:     "no upper bound",
			steps:    []step{{"A", 1000}},
			expBases: []domain.BaseSelection{{ID: "A", Quantity: 1000}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := domain.NewOrder()
			for _, s := range test.steps {
				order = order.SetBaseQuantity(s.id, s.qty)
			}
			assert.Equal(t, test.expBases, order.Bases)

			seen := map[string]bool{}
			for _, b := range order.Bases {
				assert.False(t, seen[b.ID], "duplicated id %s", b.ID)
				assert.Positive(t, b.Quantity)
				seen[b.ID] = true
			}
		})
	}
}

func TestOrder_BaseQuantity(t *testing.T) {
	order := domain.NewOrder().SetBaseQuantity("A", 3)

	assert.Equal(t, 3, order.BaseQuantity("A"))
	assert.Equal(t, 0, order.BaseQuantity("B"))
	assert.Equal(t, 0, order.SetBaseQuantity("A", 0).BaseQuantity("A"))
	assert.Equal(t, 0, order.SetBaseQuantity("A", -1).BaseQuantity("A"))
}

func TestOrder_AdjustBase(t *testing.T) {
	order := domain.NewOrder().
		AdjustBase("A", 1).
		AdjustBase("A", 1)
	assert.Equal(t, 2, order.BaseQuantity("A"))

	order = order.AdjustBase("A", -5)
	assert.Equal(t, 0, order.BaseQuantity("A"))
	assert.True(t, order.IsEmpty())
}

func TestOrder_ToggleExtra(t *testing.T) {
	original := domain.NewOrder().ToggleExtra("JUGO")

	once := original.ToggleExtra("POSTRE")
	assert.Equal(t, []string{"JUGO", "POSTRE"}, once.Extras)
	assert.True(t, once.HasExtra("POSTRE"))

	twice := once.ToggleExtra("POSTRE")
	assert.Equal(t, original.Extras, twice.Extras)

	assert.Empty(t, original.ToggleExtra("JUGO").Extras)
}

func TestOrder_Immutable(t *testing.T) {
	order := domain.NewOrder().SetBaseQuantity("A", 1).ToggleExtra("JUGO")

	_ = order.SetBaseQuantity("A", 4)
	_ = order.SetBaseQuantity("B", 2)
	_ = order.ToggleExtra("JUGO")
	_ = order.ToggleExtra("POSTRE")

	assert.Equal(t, []domain.BaseSelection{{ID: "A", Quantity: 1}}, order.Bases)
	assert.Equal(t, []string{"JUGO"}, order.Extras)
}

func TestOrder_IsEmpty(t *testing.T) {
	assert.True(t, domain.NewOrder().IsEmpty())
	assert.True(t, domain.NewOrder().ToggleExtra("JUGO").IsEmpty())
	assert.False(t, domain.NewOrder().SetBaseQuantity("A", 1).IsEmpty())
}
