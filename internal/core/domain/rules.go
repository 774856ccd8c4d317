package domain

type Executability string

const (
	ExecutableNow Executability = "EXECUTABLE_NOW"
	NotExecutable Executability = "NOT_EXECUTABLE"
)

type Reason string

const (
	ReasonWeekend        Reason = "WEEKEND"
	ReasonOutsideHours   Reason = "OUTSIDE_HOURS"
	ReasonNoDispatchLeft Reason = "NO_DISPATCH_LEFT"
)

const MarketClosed = "CLOSED"

type RulesResult struct {
	Executability        Executability `json:"executability"`
	Reason               *Reason       `json:"reason"`
	AssignedDispatchTime *string       `json:"assignedDispatchTime"`
	MarketState          string        `json:"marketState"`
	Points               int           `json:"points"`
}

func (r RulesResult) IsExecutable() bool {
	return r.Executability == ExecutableNow
}

// Evaluate decides executability from the clock alone, first match wins.
// The order is accepted for symmetry with the caller but its contents are not read.
// Points are copied through and never take part in the decision.
func Evaluate(_ Order, state ClockState) RulesResult {
	result := RulesResult{
		Executability: NotExecutable,
		MarketState:   MarketClosed,
		Points:        state.BasePoints,
	}

	switch {
	case state.IsWeekend:
		result.Reason = reasonPtr(ReasonWeekend)
	case state.Window == nil:
		result.Reason = reasonPtr(ReasonOutsideHours)
	case state.NextDispatchMinutes == nil:
		result.Reason = reasonPtr(ReasonNoDispatchLeft)
	default:
		dispatch := FormatMinutes(*state.NextDispatchMinutes)
		result.Executability = ExecutableNow
		result.MarketState = "OPEN_" + string(*state.Window)
		result.AssignedDispatchTime = &dispatch
	}

	return result
}

func reasonPtr(r Reason) *Reason {
	return &r
}

// Advisory is the text shown to the user before sending outside regular hours.
func (r Reason) Advisory() string {
	switch r {
	case ReasonOutsideHours:
		return "Estamos fuera de horario. Tu pedido se puede registrar de todas formas."
	case ReasonNoDispatchLeft:
		return "Ya no hay despachos disponibles hoy."
	case ReasonWeekend:
		return "No atendemos sábados ni domingos."
	}
	return "Pedido fuera de horario."
}
