package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/logging"
	"github.com/dmitrijs2005/puisi/internal/requestid"
)

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	err         error
	userID      int64
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// withRequestLogging tags every request with an id (taken from
// X-Request-ID when the caller sent one), recovers panics and logs one line
// per request. A panic turns into a 500 only if the handler had not yet
// started its response; otherwise the response is left as it is.
func withRequestLogging(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := requestid.OrNew(r.Header.Get(common.RequestIDHeaderName))
		w.Header().Set(common.RequestIDHeaderName, id)

		ctx := requestid.With(r.Context(), id)
		r = r.WithContext(ctx)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			panicked := false
			if p := recover(); p != nil {
				panicked = true
				rec.err = fmt.Errorf("%w: panic: %v", common.ErrorInternal, p)
				if !rec.wroteHeader {
					sendError(rec, r, rec.err)
				}
			}

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			}
			if rec.userID != 0 {
				args = append(args, "user_id", rec.userID)
			}
			switch {
			case panicked || rec.status >= http.StatusInternalServerError:
				logger.Error(ctx, "http request", append(args, "error", rec.err)...)
			case rec.err != nil:
				logger.Info(ctx, "http request", append(args, "error", rec.err.Error())...)
			default:
				logger.Info(ctx, "http request", args...)
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
