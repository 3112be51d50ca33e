package feedback

import "time"

// Note es una sugerencia de texto libre dejada por un usuario.
// Vive solo en memoria del proceso, aislada por sesión: nunca se persiste
// ni se comparte entre sesiones.
type Note struct {
	ID        string
	SessionID string
	Message   string

	CreatedAt time.Time
}
