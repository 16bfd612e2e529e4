package resource

import (
	"log"
	"net/http"

	authdelivery "medagenda-backend/internal/auth/delivery"
	authrepository "medagenda-backend/internal/auth/repository"

	"github.com/gin-gonic/gin"
)

// UniqueRule rejects a write when another record already holds the
// same value in Column.
type UniqueRule[T any] struct {
	Column  string
	Value   func(entity *T) string
	Message string
}

// Config parameterizes one resource handler: entity messages, the
// required-field validation and the uniqueness/reference checks. All
// six CRUD modules are instances of this shape.
type Config[T any] struct {
	CreatedMsg   string
	UpdatedMsg   string
	DeletedMsg   string
	NotFoundMsg  string
	NoneFoundMsg string

	// ID reports the entity primary key, used to let an update keep
	// its own unique values.
	ID func(entity *T) string

	// Bind decodes the request body into a fresh entity.
	Bind func(c *gin.Context) (*T, error)

	// Validate returns every failing field message, not just the first.
	Validate func(entity *T) []string

	Unique []UniqueRule[T]

	// CheckRefs verifies referenced entities exist; it returns the
	// not-found message for the first missing reference, "" when all
	// resolve.
	CheckRefs func(entity *T) (string, error)

	// SetOwner stamps the authenticated user onto owned entities.
	SetOwner func(entity *T, userID string)

	// Apply copies the mutable fields of src onto dst for updates.
	Apply func(dst, src *T)
}

// Handler serves the uniform CRUD surface for one resource type.
// Mutating methods expect the auth gate to have run first and
// re-resolve the authenticated user before touching storage.
type Handler[T any] struct {
	store Store[T]
	users authrepository.UserRepository
	cfg   Config[T]
}

func NewHandler[T any](store Store[T], users authrepository.UserRepository, cfg Config[T]) *Handler[T] {
	return &Handler[T]{store: store, users: users, cfg: cfg}
}

// Store handles POST /<resource>
func (h *Handler[T]) Store(c *gin.Context) {
	if !h.requesterExists(c) {
		return
	}

	entity, err := h.cfg.Bind(c)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Requisição inválida"})
		return
	}

	if msgs := h.cfg.Validate(entity); len(msgs) > 0 {
		c.JSON(http.StatusConflict, gin.H{"errors": msgs})
		return
	}

	if !h.checkUnique(c, entity, "") || !h.checkRefs(c, entity) {
		return
	}

	if h.cfg.SetOwner != nil {
		h.cfg.SetOwner(entity, authdelivery.UserID(c))
	}

	if err := h.store.Create(entity); err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.cfg.CreatedMsg})
}

// ShowAll handles GET /<resource>
func (h *Handler[T]) ShowAll(c *gin.Context) {
	entities, err := h.store.List()
	if err != nil {
		h.internalError(c, err)
		return
	}

	if len(entities) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": h.cfg.NoneFoundMsg})
		return
	}

	c.JSON(http.StatusOK, entities)
}

// ShowOne handles GET /<resource>/:id
func (h *Handler[T]) ShowOne(c *gin.Context) {
	entity, err := h.store.FindByID(c.Param("id"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	if entity == nil {
		c.JSON(http.StatusOK, gin.H{"message": h.cfg.NoneFoundMsg})
		return
	}

	c.JSON(http.StatusOK, entity)
}

// Update handles PUT /<resource>/:id
func (h *Handler[T]) Update(c *gin.Context) {
	existing, err := h.store.FindByID(c.Param("id"))
	if err != nil {
		h.internalError(c, err)
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": h.cfg.NotFoundMsg})
		return
	}

	if !h.requesterExists(c) {
		return
	}

	entity, err := h.cfg.Bind(c)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Requisição inválida"})
		return
	}

	if msgs := h.cfg.Validate(entity); len(msgs) > 0 {
		c.JSON(http.StatusConflict, gin.H{"errors": msgs})
		return
	}

	if !h.checkUnique(c, entity, h.cfg.ID(existing)) || !h.checkRefs(c, entity) {
		return
	}

	h.cfg.Apply(existing, entity)
	if err := h.store.Save(existing); err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.cfg.UpdatedMsg})
}

// Delete handles DELETE /<resource>/:id
func (h *Handler[T]) Delete(c *gin.Context) {
	entity, err := h.store.FindByID(c.Param("id"))
	if err != nil {
		h.internalError(c, err)
		return
	}
	if entity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": h.cfg.NotFoundMsg})
		return
	}

	if !h.requesterExists(c) {
		return
	}

	if err := h.store.Delete(c.Param("id")); err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.cfg.DeletedMsg})
}

// requesterExists re-resolves the authenticated user against the
// credential store, guarding against an account deleted between token
// verification and the write.
func (h *Handler[T]) requesterExists(c *gin.Context) bool {
	user, err := h.users.FindByID(authdelivery.UserID(c))
	if err != nil {
		h.internalError(c, err)
		return false
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return false
	}
	return true
}

// checkUnique enforces the configured uniqueness rules, letting a
// record keep its own values when selfID matches.
func (h *Handler[T]) checkUnique(c *gin.Context, entity *T, selfID string) bool {
	for _, rule := range h.cfg.Unique {
		existing, err := h.store.FindBy(rule.Column, rule.Value(entity))
		if err != nil {
			h.internalError(c, err)
			return false
		}
		if existing != nil && h.cfg.ID(existing) != selfID {
			c.JSON(http.StatusConflict, gin.H{"error": rule.Message})
			return false
		}
	}
	return true
}

func (h *Handler[T]) checkRefs(c *gin.Context, entity *T) bool {
	if h.cfg.CheckRefs == nil {
		return true
	}
	msg, err := h.cfg.CheckRefs(entity)
	if err != nil {
		h.internalError(c, err)
		return false
	}
	if msg != "" {
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
		return false
	}
	return true
}

func (h *Handler[T]) internalError(c *gin.Context, err error) {
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
}
