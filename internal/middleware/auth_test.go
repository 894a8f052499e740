package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/auth"
)

type stubResolver struct {
	user   *domain.User
	claims *auth.Claims
	err    error

	gotToken string
}

func (r *stubResolver) Resolve(_ context.Context, token string) (*domain.User, *auth.Claims, error) {
	r.gotToken = token
	if r.err != nil {
		return nil, nil, r.err
	}
	return r.user, r.claims, nil
}

func newRequestCtx(authorization string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	return ctx
}

func TestRequireUser_MissingToken(t *testing.T) {
	gate := NewGate(&stubResolver{}, time.Second, nil)

	called := false
	handler := gate.RequireUser(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := newRequestCtx("")
	handler(ctx)

	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
	assert.False(t, called)
}

func TestRequireUser_InvalidToken(t *testing.T) {
	gate := NewGate(&stubResolver{err: domain.ErrUnauthorized}, time.Second, nil)

	called := false
	handler := gate.RequireUser(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := newRequestCtx("Bearer bogus")
	handler(ctx)

	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
	assert.False(t, called)
}

func TestRequireUser_Success(t *testing.T) {
	user := &domain.User{ID: "u1", Username: "alice"}
	claims := &auth.Claims{}
	resolver := &stubResolver{user: user, claims: claims}
	gate := NewGate(resolver, time.Second, nil)

	var seenUser *domain.User
	var seenClaims *auth.Claims
	handler := gate.RequireUser(func(ctx *fasthttp.RequestCtx) {
		seenUser = UserFrom(ctx)
		seenClaims = ClaimsFrom(ctx)
		ctx.SetStatusCode(http.StatusOK)
	})

	ctx := newRequestCtx("Bearer good-token")
	handler(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "good-token", resolver.gotToken)
	assert.Same(t, user, seenUser)
	assert.Same(t, claims, seenClaims)
}

func TestRequireUser_ResolverFailure(t *testing.T) {
	resolver := &stubResolver{err: errors.New("redis: connection refused")}
	gate := NewGate(resolver, time.Second, nil)

	called := false
	handler := gate.RequireUser(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := newRequestCtx("Bearer good-token")
	handler(ctx)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), string(domain.ErrCodeInternal))
	assert.False(t, called)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	resolver := &stubResolver{user: &domain.User{ID: "u1", Username: "alice"}, claims: &auth.Claims{}}
	gate := NewGate(resolver, time.Second, nil)

	called := false
	handler := gate.RequireAdmin(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := newRequestCtx("Bearer good-token")
	handler(ctx)

	assert.Equal(t, http.StatusForbidden, ctx.Response.StatusCode())
	assert.False(t, called)
}

func TestRequireAdmin_Admin(t *testing.T) {
	resolver := &stubResolver{user: &domain.User{ID: "u1", Username: "root", IsAdmin: true}, claims: &auth.Claims{}}
	gate := NewGate(resolver, time.Second, nil)

	called := false
	handler := gate.RequireAdmin(func(ctx *fasthttp.RequestCtx) {
		called = true
		ctx.SetStatusCode(http.StatusOK)
	})

	ctx := newRequestCtx("Bearer good-token")
	handler(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.True(t, called)
}

func TestExtractToken_BareToken(t *testing.T) {
	ctx := newRequestCtx("raw-token-without-scheme")
	assert.Equal(t, "raw-token-without-scheme", extractToken(ctx))

	ctx = newRequestCtx("Bearer with-scheme")
	assert.Equal(t, "with-scheme", extractToken(ctx))
}
