// Package respond routes every error the server produces — handler errors,
// validation failures, router misses, panics — through the shared
// {"error":"..."} envelope, with status-appropriate logging.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/rikalg22/surat-lamaran-api/internal/api"
	appmiddleware "github.com/rikalg22/surat-lamaran-api/internal/middleware"
)

const (
	msgNotFound          = "resource not found"
	msgMethodNotAllowed  = "method not allowed"
	msgInternalServerErr = "internal server error"
)

var installOnce sync.Once

// Install ensures Huma renders all error responses in the shared envelope.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return statusError(context.Background(), status, messageOrDefault(status, msg), errs...)
		}

		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			goCtx := context.Background()
			if hctx != nil {
				goCtx = hctx.Context()
			}
			return statusError(goCtx, status, messageOrDefault(status, msg), errs...)
		}
	})
}

// writeJSON serializes an envelope directly to the ResponseWriter, for paths
// that bypass Huma (router misses, panics).
func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(body)
}

// NotFoundHandler emits a shared-envelope 404 response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := writeJSON(w, http.StatusNotFound, api.ErrorBody{Error: msgNotFound}); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits a shared-envelope 405 response.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := writeJSON(w, http.StatusMethodNotAllowed, api.ErrorBody{Error: msgMethodNotAllowed}); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into structured 500 responses using the shared
// envelope.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					appmiddleware.LogError(r.Context(), "panic recovered", err, zap.ByteString("stack", debug.Stack()))
					if writeErr := writeJSON(w, http.StatusInternalServerError, api.ErrorBody{Error: msgInternalServerErr}); writeErr != nil {
						appmiddleware.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type envelopeError struct {
	api.ErrorBody
	status int
}

func (e *envelopeError) Error() string {
	if e.ErrorBody.Error != "" {
		return e.ErrorBody.Error
	}
	return http.StatusText(e.status)
}

func (e *envelopeError) GetStatus() int {
	return e.status
}

func statusError(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	logWithStatus(ctx, status, msg, joinErrors(errs), zap.Int("status", status))
	return &envelopeError{ErrorBody: api.ErrorBody{Error: msg}, status: status}
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func messageOrDefault(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func logWithStatus(ctx context.Context, status int, msg string, err error, fields ...zap.Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	if msg == "" {
		msg = "request failed"
	}
	switch {
	case status >= 500:
		appmiddleware.LogError(ctx, msg, err, fields...)
	case status >= 400:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogWarn(ctx, msg, fields...)
	default:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogInfo(ctx, msg, fields...)
	}
}
