package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/auth"
)

const (
	userKey   = "auth_user"
	claimsKey = "auth_claims"
)

// IdentityResolver turns a bearer token into the user it identifies.
// Implemented by the auth use case.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, *auth.Claims, error)
}

// Gate enforces authentication and, where required, the admin flag before a
// request reaches its handler. Every protected route passes through here.
type Gate struct {
	resolver IdentityResolver
	timeout  time.Duration
	logger   *zap.Logger
}

func NewGate(resolver IdentityResolver, timeout time.Duration, logger *zap.Logger) *Gate {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		resolver: resolver,
		timeout:  timeout,
		logger:   logger,
	}
}

// RequireUser validates the bearer token, loads the user and stores both on
// the request. Failures respond 401 without invoking the handler.
func (g *Gate) RequireUser(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		user, claims, ok := g.authenticate(ctx)
		if !ok {
			return
		}
		ctx.SetUserValue(userKey, user)
		ctx.SetUserValue(claimsKey, claims)
		next(ctx)
	}
}

// RequireAdmin is RequireUser plus the admin check. Non-admins get 403
// before the handler runs.
func (g *Gate) RequireAdmin(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		user, claims, ok := g.authenticate(ctx)
		if !ok {
			return
		}
		if !user.CanAdminister() {
			respond(ctx, http.StatusForbidden, transport.NewError(string(domain.ErrCodeForbidden), "not authorized", nil))
			return
		}
		ctx.SetUserValue(userKey, user)
		ctx.SetUserValue(claimsKey, claims)
		next(ctx)
	}
}

func (g *Gate) authenticate(ctx *fasthttp.RequestCtx) (*domain.User, *auth.Claims, bool) {
	tokenString := extractToken(ctx)
	if tokenString == "" {
		respond(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), "missing bearer token", nil))
		return nil, nil, false
	}

	stdCtx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	user, claims, err := g.resolver.Resolve(stdCtx, tokenString)
	if err != nil {
		// Only a rejected credential reads as 401. A resolver that cannot
		// reach its backing stores is a server fault, not a bad token.
		if !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
			g.logger.Error("identity resolution failed", zap.Error(err))
			respond(ctx, http.StatusInternalServerError, transport.NewError(string(domain.ErrCodeInternal), "internal error", nil))
			return nil, nil, false
		}
		respond(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), "unauthorized", nil))
		return nil, nil, false
	}
	return user, claims, true
}

// UserFrom returns the user resolved by the gate, if any.
func UserFrom(ctx *fasthttp.RequestCtx) *domain.User {
	user, _ := ctx.UserValue(userKey).(*domain.User)
	return user
}

// ClaimsFrom returns the token claims resolved by the gate, if any.
func ClaimsFrom(ctx *fasthttp.RequestCtx) *auth.Claims {
	claims, _ := ctx.UserValue(claimsKey).(*auth.Claims)
	return claims
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

func respond(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}
