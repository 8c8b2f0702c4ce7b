package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/numconv-api/internal/platform/logger"
	"github.com/phrazzld/numconv-api/internal/redact"
)

// ErrPanic wraps the value of a recovered panic.
var ErrPanic = errors.New("recovered panic")

// ErrorResponder writes an error response for err.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// Recoverer turns panics in downstream handlers into an error response
// written by respond. If the handler had already written a status the panic
// is only logged. http.ErrAbortHandler is re-panicked so net/http can abort
// the connection.
func Recoverer(respond ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(chimiddleware.WrapResponseWriter)
			if !ok {
				ww = chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := fmt.Errorf("%w: %v", ErrPanic, rec)
				logger.FromContextOrDefault(r.Context(), slog.Default()).Error("panic in handler",
					"error", redact.Error(err),
					"status_written", ww.Status(),
					"stack", redact.String(string(debug.Stack())))

				if ww.Status() != 0 {
					return
				}
				respond(ww, r, err)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
