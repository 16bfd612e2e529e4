package delivery

import (
	"log"
	"net/http"

	authdelivery "medagenda-backend/internal/auth/delivery"
	authrepository "medagenda-backend/internal/auth/repository"
	catalogdomain "medagenda-backend/internal/catalog/domain"
	"medagenda-backend/internal/resource"
	"medagenda-backend/internal/schedule/domain"

	"github.com/gin-gonic/gin"
)

// ScheduleStore is the schedule data access surface: the generic
// store plus the per-user listing.
type ScheduleStore interface {
	resource.Store[domain.Schedule]
	FindByUserID(userID string) ([]domain.Schedule, error)
}

type scheduleRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Clinic    string  `json:"clinic"`
	Specialty string  `json:"specialty"`
	Date      string  `json:"date"`
	Hour      string  `json:"hour"`
	Price     float64 `json:"price"`
}

// ScheduleHandler is the generic resource handler plus the
// logged-user listing endpoint.
type ScheduleHandler struct {
	*resource.Handler[domain.Schedule]
	store ScheduleStore
	users authrepository.UserRepository
}

func NewScheduleHandler(store ScheduleStore, clinics resource.Store[catalogdomain.Clinic], specialties resource.Store[catalogdomain.Specialty], users authrepository.UserRepository) *ScheduleHandler {
	cfg := resource.Config[domain.Schedule]{
		CreatedMsg:   "Consulta agendada com sucesso",
		UpdatedMsg:   "Agendamento atualizado com sucesso",
		DeletedMsg:   "Agendamento deletado com sucesso",
		NotFoundMsg:  "Agendamento não encontrado",
		NoneFoundMsg: "Nenhum agendamento encontrado",
		ID:           func(e *domain.Schedule) string { return e.ID },
		Bind: func(c *gin.Context) (*domain.Schedule, error) {
			var req scheduleRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &domain.Schedule{
				Name:      req.Name,
				Email:     req.Email,
				Phone:     req.Phone,
				Clinic:    req.Clinic,
				Specialty: req.Specialty,
				Date:      req.Date,
				Hour:      req.Hour,
				Price:     req.Price,
			}, nil
		},
		Validate: func(e *domain.Schedule) []string {
			var msgs []string
			if e.Name == "" {
				msgs = append(msgs, "O nome é obrigatório")
			}
			if e.Email == "" {
				msgs = append(msgs, "Um email é obrigatório")
			}
			if e.Phone == "" {
				msgs = append(msgs, "Um telefone é obrigatório")
			}
			if e.Clinic == "" {
				msgs = append(msgs, "Uma clínica é obrigatória")
			}
			if e.Specialty == "" {
				msgs = append(msgs, "Uma especialidade é obrigatória")
			}
			if e.Date == "" {
				msgs = append(msgs, "Uma data é obrigatória")
			}
			if e.Hour == "" {
				msgs = append(msgs, "Uma hora é obrigatória")
			}
			if e.Price == 0 {
				msgs = append(msgs, "Um preço é obrigatório")
			}
			return msgs
		},
		CheckRefs: func(e *domain.Schedule) (string, error) {
			clinic, err := clinics.FindBy("name", e.Clinic)
			if err != nil {
				return "", err
			}
			if clinic == nil {
				return "Clínica não encontrada", nil
			}

			specialty, err := specialties.FindBy("name", e.Specialty)
			if err != nil {
				return "", err
			}
			if specialty == nil {
				return "Especialidade não encontrada", nil
			}
			return "", nil
		},
		SetOwner: func(e *domain.Schedule, userID string) {
			e.UserID = userID
		},
		Apply: func(dst, src *domain.Schedule) {
			dst.Name = src.Name
			dst.Email = src.Email
			dst.Phone = src.Phone
			dst.Clinic = src.Clinic
			dst.Specialty = src.Specialty
			dst.Date = src.Date
			dst.Hour = src.Hour
			dst.Price = src.Price
		},
	}

	return &ScheduleHandler{
		Handler: resource.NewHandler[domain.Schedule](store, users, cfg),
		store:   store,
		users:   users,
	}
}

// ShowLogged handles GET /schedules/logged, listing the authenticated
// user's own appointments.
func (h *ScheduleHandler) ShowLogged(c *gin.Context) {
	userID := authdelivery.UserID(c)

	user, err := h.users.FindByID(userID)
	if err != nil {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	schedules, err := h.store.FindByUserID(userID)
	if err != nil {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	if len(schedules) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nenhum agendamento encontrado"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}
