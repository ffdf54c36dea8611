package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// RoleMetadata is the operation metadata key naming the role an operation
// requires.
const RoleMetadata = "role"

// Middleware authenticates every operation that declares a security
// requirement and enforces its RoleMetadata. Operations without security
// stay public.
func (h *AuthHandler) Middleware(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		if op == nil || len(op.Security) == 0 {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Token de acceso requerido")
			return
		}

		claims, err := h.ParseToken(tokenString)
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Token inválido o expirado")
			return
		}

		if role, _ := op.Metadata[RoleMetadata].(string); role != "" && !slices.Contains(claims.Roles, role) {
			huma.WriteErr(api, ctx, http.StatusForbidden, "Acceso denegado: se requiere el rol "+role)
			return
		}

		next(huma.WithValue(ctx, ClaimsKey, claims))
	}
}

func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	return claims, ok
}
