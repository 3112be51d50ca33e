package breeds

import "strings"

// FindMatches devuelve los registros cuyo Name contiene query como substring,
// sin distinguir mayúsculas. Función pura:
// - query vacío => tabla vacía (el trim del input es responsabilidad del caller)
// - Name vacío/faltante => no matchea, nunca error
// - preserva el orden relativo de la tabla de entrada (filtro estable)
func FindMatches(table Table, query string) Table {
	out := make(Table, 0)
	if query == "" {
		return out
	}

	q := strings.ToLower(query)
	for _, b := range table {
		if b.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}
