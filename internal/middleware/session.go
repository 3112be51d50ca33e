package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionHeader identifica la sesión del cliente. El estado por sesión
// (feedback) vive detrás de este ID; no es autenticación.
const SessionHeader = "X-Session-ID"

// SessionContext:
// - Si viene X-Session-ID => lo setea en el contexto tal cual.
// - Si no viene => genera un UUID nuevo para este request.
// En ambos casos el ID se devuelve en el header de respuesta, para que el
// cliente lo adopte y sus próximos requests caigan en la misma sesión.
func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), sessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSession(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
