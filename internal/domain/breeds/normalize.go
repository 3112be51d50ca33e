package breeds

import (
	"strconv"

	"dog-knowledge-base/internal/ports/source"
)

// Normalize proyecta cada registro upstream sobre el esquema fijo de diez
// campos. Cada campo destino se busca de forma independiente con su default:
// key ausente o valor con forma inesperada => "" (faltante explícito), nunca
// un error. No se eliminan duplicados ni se valida el contenido.
func Normalize(raws []source.RawBreed) Table {
	table := make(Table, 0, len(raws))
	for _, raw := range raws {
		table = append(table, Breed{
			Name:        stringField(raw, "name"),
			BredFor:     stringField(raw, "bred_for"),
			Group:       stringField(raw, "breed_group"),
			Origin:      stringField(raw, "origin"),
			LifeSpan:    stringField(raw, "life_span"),
			Temperament: stringField(raw, "temperament"),
			WeightKg:    nestedStringField(raw, "weight", "metric"),
			HeightCm:    nestedStringField(raw, "height", "metric"),
			ImageURL:    nestedStringField(raw, "image", "url"),
			BreedID:     idField(raw, "id"),
		})
	}
	return table
}

func stringField(raw source.RawBreed, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// nestedStringField resuelve un nivel de anidamiento (p.ej. weight.metric).
func nestedStringField(raw source.RawBreed, key, sub string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	s, ok := m[sub].(string)
	if !ok {
		return ""
	}
	return s
}

// idField acepta string o número JSON (encoding/json decodifica números a
// float64) y lo deja como string opaco.
func idField(raw source.RawBreed, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
