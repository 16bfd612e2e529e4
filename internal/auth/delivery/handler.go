package delivery

import (
	"errors"
	"log"
	"net/http"

	authdto "medagenda-backend/internal/auth/dto"
	"medagenda-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Requisição inválida"})
		return
	}

	if err := h.authUsecase.Register(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário criado com sucesso"})
}

// Login handles POST /tokens
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Requisição inválida"})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListUsers handles GET /users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	if len(users) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nenhum usuário encontrado"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Nenhum usuário encontrado"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// LoggedUser handles GET /users/logged
func (h *AuthHandler) LoggedUser(c *gin.Context) {
	user, err := h.authUsecase.LoggedUser(UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Nenhum usuário encontrado"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateName handles PUT /users
func (h *AuthHandler) UpdateName(c *gin.Context) {
	var req authdto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Requisição inválida"})
		return
	}

	if err := h.authUsecase.UpdateName(UserID(c), req.Name); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário atualizado com sucesso"})
}

// DeleteUser handles DELETE /users/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.authUsecase.DeleteUser(c.Param("id"), UserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário deletado com sucesso"})
}

// respondError maps usecase errors onto the JSON envelope. Anything
// unrecognized is logged and answered with an opaque 500.
func respondError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	var conflictErr *usecase.ConflictError
	var notFoundErr *usecase.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusConflict, gin.H{"errors": validationErr.Messages})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": []string{err.Error()}})
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
	}
}
