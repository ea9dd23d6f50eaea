package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/medicard/backend/internal/auth/jwt"
	"github.com/medicard/backend/internal/config"
	"github.com/medicard/backend/internal/ctrl"
	"github.com/medicard/backend/internal/hdl"
	"github.com/medicard/backend/internal/hdl/http/utils"
	md "github.com/medicard/backend/internal/models"
	metrics "github.com/medicard/backend/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type tokenParser interface {
	ParseAccess(ctx context.Context, tokenStr string) (jwt.Claims, error)
}

type roleSource interface {
	GetUserRole(ctx context.Context, userID int64) (md.Role, error)
}

// Auth verifies the access token and gates the route on an explicit
// set of allowed roles. An empty set admits any authenticated user.
// Token verification failures and role mismatches both answer 401;
// only a store failure during the role lookup answers 500.
func Auth(au tokenParser, roles roleSource, allowed ...md.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token := extractToken(r)
				if token == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingToken)
					return
				}

				claims, err := au.ParseAccess(r.Context(), token)
				if err != nil {
					utils.ErrResponse(w, http.StatusUnauthorized, err)
					return
				}

				role, err := roles.GetUserRole(r.Context(), claims.UID)
				if err != nil {
					if errors.Is(err, ctrl.ErrNotFound) {
						utils.ErrResponse(w, http.StatusUnauthorized, err)
						return
					}

					zap.L().Error(
						"failed to resolve user role",
						zap.Int64("uid", claims.UID),
						zap.Error(err),
					)
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
					return
				}

				if len(allowed) > 0 && !role.OneOf(allowed...) {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingToken)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				ctx = context.WithValue(ctx, config.RoleKey, role)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// extractToken prefers the Authorization header. Legacy device clients
// send the token in a `token` body field instead, so the body is read
// and restored for the downstream handler.
func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		return strings.TrimPrefix(h, "Bearer ")
	}

	if r.Body == nil {
		return ""
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	payload := struct {
		Token string `json:"token"`
	}{}
	if err = json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.Token
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.RequestURI)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.RequestURI))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
