package breeds

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"dog-knowledge-base/internal/ports/source"
)

var (
	ErrFetchFailed = errors.New("breed catalog fetch failed")
)

// Catalog es el dueño exclusivo de la tabla normalizada. Ciclo de vida por
// época de caché: {vacío → cargando → poblado | fallido}. Un fetch exitoso
// memoiza la tabla hasta Invalidate(); un fetch fallido no deja nada en
// caché (el siguiente Load reintenta).
type Catalog struct {
	src     source.BreedSource
	timeout time.Duration

	sf singleflight.Group

	mu     sync.RWMutex
	epoch  uint64
	table  Table
	loaded bool
}

func NewCatalog(src source.BreedSource) *Catalog {
	return &Catalog{
		src:     src,
		timeout: 10 * time.Second,
	}
}

// Load devuelve la tabla normalizada, memoizada por época.
//   - Llamadas repetidas dentro de la misma época no vuelven a hacer fetch.
//   - Llamadas concurrentes durante un fetch en vuelo se coalescen en un solo
//     request saliente y observan el mismo resultado (o el mismo fallo).
//   - El resultado es una copia: mutarla no afecta la tabla compartida.
func (c *Catalog) Load(ctx context.Context) (Table, error) {
	c.mu.RLock()
	if c.loaded {
		t := cloneTable(c.table)
		c.mu.RUnlock()
		return t, nil
	}
	epoch := c.epoch
	c.mu.RUnlock()

	v, err, _ := c.sf.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		// Re-chequeo: otro vuelo de esta época pudo haber poblado ya.
		c.mu.RLock()
		if c.loaded && c.epoch == epoch {
			t := c.table
			c.mu.RUnlock()
			return t, nil
		}
		c.mu.RUnlock()

		// El fetch corre con su propio deadline, desacoplado del ctx del
		// caller: un caller que abandona no cancela el vuelo compartido.
		fctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		raws, err := c.src.FetchBreeds(fctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}

		table := Normalize(raws)

		c.mu.Lock()
		// Si Invalidate() corrió mientras el fetch estaba en vuelo, el
		// resultado pertenece a una época vieja: se descarta sin poblar.
		if c.epoch == epoch {
			c.table = table
			c.loaded = true
		}
		c.mu.Unlock()

		return table, nil
	})
	if err != nil {
		return nil, err
	}

	return cloneTable(v.(Table)), nil
}

// Invalidate descarta la tabla memoizada y abre una nueva época.
// El siguiente Load vuelve a hacer fetch.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.epoch++
	c.table = nil
	c.loaded = false
	c.mu.Unlock()
}

func cloneTable(t Table) Table {
	if t == nil {
		return Table{}
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}
