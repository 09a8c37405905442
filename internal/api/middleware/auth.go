package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fragpit/commission/internal/auth"
)

type ctxKey string

const CtxUserEmailKey ctxKey = "user_email"

func RequireJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				slog.Warn(
					"authentication error",
					slog.String("error", "header not set"),
				)
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") ||
				parts[1] == "" {
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			email, err := auth.GetEmailFromJWTToken(secret, parts[1])
			if err != nil {
				slog.Warn("invalid jwt", slog.Any("error", err))
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
