package api

import (
	"net/http"

	authdelivery "medagenda-backend/internal/auth/delivery"
	authrepository "medagenda-backend/internal/auth/repository"
	authusecase "medagenda-backend/internal/auth/usecase"
	catalogdomain "medagenda-backend/internal/catalog/domain"
	"medagenda-backend/internal/resource"
	scheduledelivery "medagenda-backend/internal/schedule/delivery"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth      *authdelivery.AuthHandler
	Clinic    *resource.Handler[catalogdomain.Clinic]
	Exam      *resource.Handler[catalogdomain.Exam]
	Specialty *resource.Handler[catalogdomain.Specialty]
	Medic     *resource.Handler[catalogdomain.Medic]
	Schedule  *scheduledelivery.ScheduleHandler
}

func SetupRoutes(r *gin.Engine, tokens *authusecase.TokenService, userRepo authrepository.UserRepository, h Handlers) {
	loginRequired := authdelivery.LoginRequired(tokens, userRepo)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		users.POST("", h.Auth.Register)
		users.GET("", h.Auth.ListUsers)
		users.GET("/logged", loginRequired, h.Auth.LoggedUser)
		users.GET("/:id", h.Auth.GetUser)
		users.PUT("", loginRequired, h.Auth.UpdateName)
		users.DELETE("/:id", loginRequired, h.Auth.DeleteUser)
	}

	r.POST("/tokens", h.Auth.Login)

	registerResource(r, "/clinics", loginRequired, h.Clinic)
	registerResource(r, "/exams", loginRequired, h.Exam)
	registerResource(r, "/specialtys", loginRequired, h.Specialty)
	registerResource(r, "/medics", loginRequired, h.Medic)

	schedules := r.Group("/schedules")
	{
		schedules.POST("", loginRequired, h.Schedule.Store)
		schedules.GET("", h.Schedule.ShowAll)
		schedules.GET("/logged", loginRequired, h.Schedule.ShowLogged)
		schedules.GET("/:id", h.Schedule.ShowOne)
		schedules.PUT("/:id", loginRequired, h.Schedule.Update)
		schedules.DELETE("/:id", loginRequired, h.Schedule.Delete)
	}
}

// registerResource mounts the uniform CRUD surface: reads are public,
// mutations go through the auth gate.
func registerResource[T any](r *gin.Engine, path string, loginRequired gin.HandlerFunc, h *resource.Handler[T]) {
	g := r.Group(path)
	{
		g.POST("", loginRequired, h.Store)
		g.GET("", h.ShowAll)
		g.GET("/:id", h.ShowOne)
		g.PUT("/:id", loginRequired, h.Update)
		g.DELETE("/:id", loginRequired, h.Delete)
	}
}
