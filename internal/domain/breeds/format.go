package breeds

import "strings"

// MissingValue es el placeholder de display para campos faltantes o
// no parseables.
const MissingValue = "—"

// ParseLeadingValue extrae el primer valor de un rango tipo "20 - 30" para
// mostrar una métrica simple. Heurística de display best-effort, no un parse
// numérico validado: input vacío o malformado degrada a MissingValue en vez
// de fallar.
func ParseLeadingValue(text string) string {
	if text == "" {
		return MissingValue
	}

	first, _, _ := strings.Cut(text, "-")
	first = strings.TrimSpace(first)
	if first == "" {
		return MissingValue
	}
	return first
}
