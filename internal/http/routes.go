package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "curtisos.com/curtisos/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/due-soon", h.DueSoon)
	e.PATCH("/tasks/bulk", h.BulkUpdate)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
}
