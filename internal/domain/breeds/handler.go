package breeds

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, cat *Catalog) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(cat))
		br.Get("/search", searchBreedsHandler(cat))

		// Detalle por nombre (primera ocurrencia si hay duplicados)
		br.Get("/{name}", getBreedHandler(cat))
	})

	// Invalidación explícita de la caché (nueva época)
	r.Post("/catalog/refresh", refreshCatalogHandler(cat))
}

type breedResponse struct {
	Name        string `json:"name"`
	BredFor     string `json:"bred_for,omitempty"`
	Group       string `json:"group,omitempty"`
	Origin      string `json:"origin,omitempty"`
	LifeSpan    string `json:"life_span,omitempty"`
	Temperament string `json:"temperament,omitempty"`
	WeightKg    string `json:"weight_kg,omitempty"`
	HeightCm    string `json:"height_cm,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	BreedID     string `json:"breed_id,omitempty"`
}

// breedDetailResponse agrega las tres métricas de display del detalle:
// weight/height pasan por ParseLeadingValue, life_span va verbatim.
type breedDetailResponse struct {
	breedResponse

	WeightDisplay   string `json:"weight_display"`
	HeightDisplay   string `json:"height_display"`
	LifeSpanDisplay string `json:"life_span_display"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []breedResponse `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listBreedsHandler godoc
// @Summary Catálogo completo de razas
// @Produce json
// @Success 200 {array} breeds.breedResponse
// @Failure 502 {object} breeds.errorResponse
// @Router /breeds [get]
func listBreedsHandler(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := cat.Load(r.Context())
		if err != nil {
			// Fallo de fetch: nunca catálogo parcial, siempre error visible.
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "breed catalog unavailable"})
			return
		}

		writeJSON(w, http.StatusOK, toBreedResponses(table))
	}
}

// searchBreedsHandler godoc
// @Summary Busca razas por substring del nombre (case-insensitive)
// @Produce json
// @Param q query string false "texto a buscar; vacío devuelve cero filas"
// @Success 200 {object} breeds.searchResponse
// @Failure 502 {object} breeds.errorResponse
// @Router /breeds/search [get]
func searchBreedsHandler(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// El trim es responsabilidad del borde, no del filtro.
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		table, err := cat.Load(r.Context())
		if err != nil {
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "breed catalog unavailable"})
			return
		}

		matches := FindMatches(table, query)

		writeJSON(w, http.StatusOK, searchResponse{
			Query:   query,
			Count:   len(matches),
			Results: toBreedResponses(matches),
		})
	}
}

// getBreedHandler godoc
// @Summary Detalle de una raza por nombre
// @Produce json
// @Param name path string true "nombre de la raza (match exacto primero, luego substring)"
// @Success 200 {object} breeds.breedDetailResponse
// @Failure 404 {object} breeds.errorResponse
// @Failure 502 {object} breeds.errorResponse
// @Router /breeds/{name} [get]
func getBreedHandler(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(chi.URLParam(r, "name"))
		if name == "" {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "breed not found"})
			return
		}

		table, err := cat.Load(r.Context())
		if err != nil {
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "breed catalog unavailable"})
			return
		}

		b, ok := resolveBreed(table, name)
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "breed not found"})
			return
		}

		lifeSpan := b.LifeSpan
		if lifeSpan == "" {
			lifeSpan = MissingValue
		}

		writeJSON(w, http.StatusOK, breedDetailResponse{
			breedResponse: toBreedResponse(b),

			WeightDisplay:   ParseLeadingValue(b.WeightKg),
			HeightDisplay:   ParseLeadingValue(b.HeightCm),
			LifeSpanDisplay: lifeSpan,
		})
	}
}

// refreshCatalogHandler godoc
// @Summary Invalida la caché del catálogo (el próximo acceso vuelve a hacer fetch)
// @Success 204 "sin contenido"
// @Router /catalog/refresh [post]
func refreshCatalogHandler(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		cat.Invalidate()
		w.WriteHeader(http.StatusNoContent)
	}
}

// resolveBreed resuelve nombre => registro: primero match exacto
// (case-insensitive), si no, primer match por substring. Con nombres
// duplicados gana la primera ocurrencia en orden upstream; comportamiento
// documentado, no un bug.
func resolveBreed(table Table, name string) (Breed, bool) {
	for _, b := range table {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}

	matches := FindMatches(table, name)
	if len(matches) == 0 {
		return Breed{}, false
	}
	return matches[0], true
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		Name:        b.Name,
		BredFor:     b.BredFor,
		Group:       b.Group,
		Origin:      b.Origin,
		LifeSpan:    b.LifeSpan,
		Temperament: b.Temperament,
		WeightKg:    b.WeightKg,
		HeightCm:    b.HeightCm,
		ImageURL:    b.ImageURL,
		BreedID:     b.BreedID,
	}
}

func toBreedResponses(t Table) []breedResponse {
	out := make([]breedResponse, 0, len(t))
	for _, b := range t {
		out = append(out, toBreedResponse(b))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (breeds/feedback) para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
