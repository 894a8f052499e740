package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/backend/domain"
	adminUC "github.com/taskdeck/backend/usecase/admin"
)

type guardUserRepo struct {
	t *testing.T
}

func (r *guardUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	r.t.Fatal("unexpected repository call")
	return nil, nil
}

func (r *guardUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	r.t.Fatal("unexpected repository call")
	return nil, nil
}

func (r *guardUserRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	r.t.Fatal("unexpected repository call")
	return nil, nil
}

func (r *guardUserRepo) List(context.Context) ([]domain.User, error) {
	r.t.Fatal("unexpected repository call")
	return nil, nil
}

func (r *guardUserRepo) Delete(context.Context, string) error {
	r.t.Fatal("unexpected repository call")
	return nil
}

func (r *guardUserRepo) SetAdmin(context.Context, string, bool) error {
	r.t.Fatal("unexpected repository call")
	return nil
}

type guardStatsRepo struct {
	t *testing.T
}

func (r *guardStatsRepo) Collect(context.Context) (*domain.Stats, error) {
	r.t.Fatal("unexpected repository call")
	return nil, nil
}

type guardRecorder struct {
	t *testing.T
}

func (r *guardRecorder) RecordAction(context.Context, string, string, string) error {
	r.t.Fatal("unexpected audit call")
	return nil
}

func newAdminHandler(t *testing.T) *AdminHandler {
	uc := adminUC.New(&guardUserRepo{t: t}, &guardTaskRepo{t: t}, &guardStatsRepo{t: t}, &guardRecorder{t: t}, nil)
	return NewAdminHandler(uc, nil, nil)
}

func TestAdminDeleteUser_MalformedID(t *testing.T) {
	h := newAdminHandler(t)
	gate := newGate(&domain.User{ID: "root-id", Username: "root", IsAdmin: true})
	handler := gate.RequireAdmin(h.DeleteUser)

	ctx := newTaskRequest("not-a-uuid")
	handler(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), string(domain.ErrCodeNotFound))
}

func TestAdminMakeAdmin_MalformedID(t *testing.T) {
	h := newAdminHandler(t)
	gate := newGate(&domain.User{ID: "root-id", Username: "root", IsAdmin: true})
	handler := gate.RequireAdmin(h.MakeAdmin)

	ctx := newTaskRequest("99")
	handler(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), string(domain.ErrCodeNotFound))
}
