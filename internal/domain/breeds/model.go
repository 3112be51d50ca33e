package breeds

// Breed es el registro normalizado de una raza, con el esquema fijo de diez
// campos. Todo campo opcional ausente (o con forma inesperada) upstream queda
// como "" — el valor faltante explícito. Name es la clave de búsqueda; no se
// garantiza única (variantes regionales pueden repetir nombre).
type Breed struct {
	Name        string
	BredFor     string
	Group       string
	Origin      string
	LifeSpan    string // rango libre, p.ej. "10 - 13 years"
	Temperament string // texto libre separado por comas
	WeightKg    string // rango libre, p.ej. "20 - 30"
	HeightCm    string
	ImageURL    string
	BreedID     string // id upstream, opaco
}

// Table es la secuencia ordenada de registros (orden upstream, no ordenada
// por nombre). Inmutable después de construida: ningún componente muta un
// registro in place; los consumidores reciben vistas de solo lectura.
type Table []Breed
