package api

import (
	authrepository "medagenda-backend/internal/auth/repository"
	authusecase "medagenda-backend/internal/auth/usecase"
	"medagenda-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tokens   *authusecase.TokenService
	userRepo authrepository.UserRepository
	handlers Handlers
	config   *config.Config
}

func NewHandler(tokens *authusecase.TokenService, userRepo authrepository.UserRepository, handlers Handlers, cfg *config.Config) *Handler {
	return &Handler{
		tokens:   tokens,
		userRepo: userRepo,
		handlers: handlers,
		config:   cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.tokens, h.userRepo, h.handlers)

	return r.Run(addr)
}
