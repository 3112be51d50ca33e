package source

import "context"

// RawBreed es un registro upstream tal cual llega: un mapa de keys
// arbitrarias a valores, con sub-objetos anidados (weight, height, image).
// La fuente no garantiza qué keys vienen en cada registro; la proyección
// al esquema fijo vive en el dominio (breeds.Normalize).
type RawBreed map[string]any

// BreedSource es el puerto hacia la fuente upstream de razas.
// Un fetch es una foto completa del catálogo: o llega entero o falla.
type BreedSource interface {
	FetchBreeds(ctx context.Context) ([]RawBreed, error)
}
