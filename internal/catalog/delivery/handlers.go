package delivery

import (
	authrepository "medagenda-backend/internal/auth/repository"
	"medagenda-backend/internal/catalog/domain"
	"medagenda-backend/internal/resource"

	"github.com/gin-gonic/gin"
)

type clinicRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	MapURL  string `json:"mapUrl"`
}

func NewClinicHandler(store resource.Store[domain.Clinic], users authrepository.UserRepository) *resource.Handler[domain.Clinic] {
	return resource.NewHandler(store, users, resource.Config[domain.Clinic]{
		CreatedMsg:   "Clínica criada com sucesso",
		UpdatedMsg:   "Clínica atualizada com sucesso",
		DeletedMsg:   "Clínica deletada com sucesso",
		NotFoundMsg:  "Clínica não encontrada",
		NoneFoundMsg: "Nenhuma clínica encontrada",
		ID:           func(e *domain.Clinic) string { return e.ID },
		Bind: func(c *gin.Context) (*domain.Clinic, error) {
			var req clinicRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &domain.Clinic{Name: req.Name, Address: req.Address, MapURL: req.MapURL}, nil
		},
		Validate: func(e *domain.Clinic) []string {
			var msgs []string
			if e.Name == "" {
				msgs = append(msgs, "O nome é obrigatório")
			}
			if e.Address == "" {
				msgs = append(msgs, "O endereço é obrigatório")
			}
			if e.MapURL == "" {
				msgs = append(msgs, "O link para o mapa é obrigatório")
			}
			return msgs
		},
		Unique: []resource.UniqueRule[domain.Clinic]{
			{Column: "name", Value: func(e *domain.Clinic) string { return e.Name }, Message: "Esse nome já está em uso"},
		},
		Apply: func(dst, src *domain.Clinic) {
			dst.Name = src.Name
			dst.Address = src.Address
			dst.MapURL = src.MapURL
		},
	})
}

type examRequest struct {
	ImageURL    string  `json:"imageUrl"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func NewExamHandler(store resource.Store[domain.Exam], users authrepository.UserRepository) *resource.Handler[domain.Exam] {
	return resource.NewHandler(store, users, resource.Config[domain.Exam]{
		CreatedMsg:   "Exame criado com sucesso",
		UpdatedMsg:   "Exame atualizado com sucesso",
		DeletedMsg:   "Exame deletado com sucesso",
		NotFoundMsg:  "Exame não encontrado",
		NoneFoundMsg: "Nenhum exame encontrado",
		ID:           func(e *domain.Exam) string { return e.ID },
		Bind: func(c *gin.Context) (*domain.Exam, error) {
			var req examRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &domain.Exam{ImageURL: req.ImageURL, Name: req.Name, Description: req.Description, Price: req.Price}, nil
		},
		Validate: func(e *domain.Exam) []string {
			var msgs []string
			if e.ImageURL == "" {
				msgs = append(msgs, "A url da imagem é obrigatória")
			}
			if e.Name == "" {
				msgs = append(msgs, "O nome é obrigatório")
			}
			if e.Description == "" {
				msgs = append(msgs, "A descrição é obrigatória")
			}
			if e.Price == 0 {
				msgs = append(msgs, "O preço é obrigatório")
			}
			return msgs
		},
		Apply: func(dst, src *domain.Exam) {
			dst.ImageURL = src.ImageURL
			dst.Name = src.Name
			dst.Description = src.Description
			dst.Price = src.Price
		},
	})
}

func NewSpecialtyHandler(store resource.Store[domain.Specialty], users authrepository.UserRepository) *resource.Handler[domain.Specialty] {
	return resource.NewHandler(store, users, resource.Config[domain.Specialty]{
		CreatedMsg:   "Especialidade criada com sucesso",
		UpdatedMsg:   "Especialidade atualizada com sucesso",
		DeletedMsg:   "Especialidade deletada com sucesso",
		NotFoundMsg:  "Especialidade não encontrada",
		NoneFoundMsg: "Nenhuma especialidade encontrada",
		ID:           func(e *domain.Specialty) string { return e.ID },
		Bind: func(c *gin.Context) (*domain.Specialty, error) {
			var req examRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &domain.Specialty{ImageURL: req.ImageURL, Name: req.Name, Description: req.Description, Price: req.Price}, nil
		},
		Validate: func(e *domain.Specialty) []string {
			var msgs []string
			if e.ImageURL == "" {
				msgs = append(msgs, "A url da imagem é obrigatória")
			}
			if e.Name == "" {
				msgs = append(msgs, "O nome é obrigatório")
			}
			if e.Description == "" {
				msgs = append(msgs, "A descrição é obrigatória")
			}
			if e.Price == 0 {
				msgs = append(msgs, "O preço é obrigatório")
			}
			return msgs
		},
		Apply: func(dst, src *domain.Specialty) {
			dst.ImageURL = src.ImageURL
			dst.Name = src.Name
			dst.Description = src.Description
			dst.Price = src.Price
		},
	})
}

type medicRequest struct {
	ImageURL  string `json:"imageUrl"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	CRM       string `json:"crm"`
}

func NewMedicHandler(store resource.Store[domain.Medic], users authrepository.UserRepository) *resource.Handler[domain.Medic] {
	return resource.NewHandler(store, users, resource.Config[domain.Medic]{
		CreatedMsg:   "Médico criado com sucesso",
		UpdatedMsg:   "Médico atualizado com sucesso",
		DeletedMsg:   "Médico deletado com sucesso",
		NotFoundMsg:  "Médico não encontrado",
		NoneFoundMsg: "Nenhum médico encontrado",
		ID:           func(e *domain.Medic) string { return e.ID },
		Bind: func(c *gin.Context) (*domain.Medic, error) {
			var req medicRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &domain.Medic{ImageURL: req.ImageURL, Name: req.Name, Specialty: req.Specialty, CRM: req.CRM}, nil
		},
		Validate: func(e *domain.Medic) []string {
			var msgs []string
			if e.ImageURL == "" {
				msgs = append(msgs, "Uma imagem é obrigatória")
			}
			if e.Name == "" {
				msgs = append(msgs, "O nome é obrigatório")
			}
			if e.Specialty == "" {
				msgs = append(msgs, "Uma especialidade é obrigatória")
			}
			if e.CRM == "" {
				msgs = append(msgs, "O crm é obrigatório")
			}
			return msgs
		},
		Unique: []resource.UniqueRule[domain.Medic]{
			{Column: "crm", Value: func(e *domain.Medic) string { return e.CRM }, Message: "Esse crm já está em uso"},
		},
		Apply: func(dst, src *domain.Medic) {
			dst.ImageURL = src.ImageURL
			dst.Name = src.Name
			dst.Specialty = src.Specialty
			dst.CRM = src.CRM
		},
	})
}
