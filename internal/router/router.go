package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/taskdeck/backend/api/handler"
	"github.com/taskdeck/backend/internal/middleware"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Admin  *apiHandler.AdminHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, gate *middleware.Gate) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Unauthenticated by design: registration creates the user, the token
	// endpoint is what produces a credential in the first place.
	r.POST("/register", handlers.Auth.Register)
	r.POST("/token", handlers.Auth.Token)

	r.POST("/logout", gate.RequireUser(handlers.Auth.Logout))

	r.GET("/tasks", gate.RequireUser(handlers.Task.ListTasks))
	r.POST("/tasks", gate.RequireUser(handlers.Task.CreateTask))
	r.GET("/tasks/{id}", gate.RequireUser(handlers.Task.GetTask))
	r.PUT("/tasks/{id}", gate.RequireUser(handlers.Task.UpdateTask))
	r.DELETE("/tasks/{id}", gate.RequireUser(handlers.Task.DeleteTask))
	r.PATCH("/tasks/{id}/complete", gate.RequireUser(handlers.Task.CompleteTask))

	// /users exposes the same listing as /admin/users and carries the same
	// admin requirement.
	r.GET("/users", gate.RequireAdmin(handlers.Admin.ListUsers))

	r.GET("/admin/users", gate.RequireAdmin(handlers.Admin.ListUsers))
	r.GET("/admin/tasks", gate.RequireAdmin(handlers.Admin.ListTasks))
	r.DELETE("/admin/users/{id}", gate.RequireAdmin(handlers.Admin.DeleteUser))
	r.PATCH("/admin/users/{id}/make-admin", gate.RequireAdmin(handlers.Admin.MakeAdmin))
	r.GET("/admin/stats", gate.RequireAdmin(handlers.Admin.Stats))

	return r
}
