package domain

import (
	"fmt"
	"strings"
)

// ComposeMessage renders the order as the chat message sent to the kitchen.
// It reports false when the order has no base selections.
func ComposeMessage(order Order, result RulesResult, state ClockState, catalog *Catalog) (string, bool) {
	if order.IsEmpty() || catalog == nil {
		return "", false
	}

	var b strings.Builder

	b.WriteString("*🍽️ PEDIDO DE ALMUERZO*\n\n")
	fmt.Fprintf(&b, "📅 Fecha: %s\n", state.LocalizedDate)
	fmt.Fprintf(&b, "⏰ Hora: %s\n", state.LocalizedTime)
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━\n\n")
	b.WriteString("*📦 PEDIDO:*\n")

	for _, base := range order.Bases {
		opt, ok := catalog.Option(base.ID)
		if !ok {
			continue
		}
		detail := ""
		if opt.TodaySpecific != "" {
			detail = " — " + opt.TodaySpecific
		}
		fmt.Fprintf(&b, "• %d × %s %s%s\n", base.Quantity, opt.Icon, opt.DisplayName, detail)
	}

	if len(order.Extras) > 0 {
		b.WriteString("\n*➕ EXTRAS:*\n")
		for _, id := range order.Extras {
			extra, ok := catalog.Extra(id)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "• %s %s\n", extra.Icon, extra.DisplayName)
		}
	}

	if result.AssignedDispatchTime != nil {
		fmt.Fprintf(&b, "\n🚚 *Despacho estimado:* %s\n", *result.AssignedDispatchTime)
	} else {
		b.WriteString("\n⚠️ *Nota:* Pedido fuera de horario regular\n")
	}

	if result.Points > 0 {
		fmt.Fprintf(&b, "⭐ *Puntos:* %d\n", result.Points)
	}

	b.WriteString("\n_Enviado desde la app de pedidos_")

	return strings.TrimSpace(b.String()), true
}
