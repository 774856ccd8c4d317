package domain

type BaseSelection struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Order is the in-progress selection. Operations never modify the receiver,
// they return a new Order.
type Order struct {
	Bases  []BaseSelection `json:"bases"`
	Extras []string        `json:"extras"`
}

func NewOrder() Order {
	return Order{
		Bases:  []BaseSelection{},
		Extras: []string{},
	}
}

// SetBaseQuantity removes any entry for id and appends a new one when quantity > 0.
func (o Order) SetBaseQuantity(id string, quantity int) Order {
	bases := make([]BaseSelection, 0, len(o.Bases)+1)
	for _, b := range o.Bases {
		if b.ID != id {
			bases = append(bases, b)
		}
	}
	if quantity > 0 {
		bases = append(bases, BaseSelection{ID: id, Quantity: quantity})
	}

	return Order{Bases: bases, Extras: o.copyExtras()}
}

// AdjustBase shifts the quantity of id by delta, never below zero.
func (o Order) AdjustBase(id string, delta int) Order {
	return o.SetBaseQuantity(id, max(0, o.BaseQuantity(id)+delta))
}

func (o Order) BaseQuantity(id string) int {
	for _, b := range o.Bases {
		if b.ID == id {
			return b.Quantity
		}
	}
	return 0
}

func (o Order) ToggleExtra(id string) Order {
	extras := make([]string, 0, len(o.Extras)+1)
	found := false
	for _, e := range o.Extras {
		if e == id {
			found = true
			continue
		}
		extras = append(extras, e)
	}
	if !found {
		extras = append(extras, id)
	}

	return Order{Bases: o.copyBases(), Extras: extras}
}

func (o Order) HasExtra(id string) bool {
	for _, e := range o.Extras {
		if e == id {
			return true
		}
	}
	return false
}

// IsEmpty reports whether there are no base selections. Extras alone do not count.
func (o Order) IsEmpty() bool {
	return len(o.Bases) == 0
}

// Clone returns a deep copy safe to hand to the presentation layer.
func (o Order) Clone() Order {
	return Order{Bases: o.copyBases(), Extras: o.copyExtras()}
}

func (o Order) copyBases() []BaseSelection {
	bases := make([]BaseSelection, len(o.Bases))
	copy(bases, o.Bases)
	return bases
}

func (o Order) copyExtras() []string {
	extras := make([]string, len(o.Extras))
	copy(extras, o.Extras)
	return extras
}
