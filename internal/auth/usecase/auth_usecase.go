package usecase

import (
	"net/mail"
	"unicode/utf8"

	authdomain "medagenda-backend/internal/auth/domain"
	authdto "medagenda-backend/internal/auth/dto"
	"medagenda-backend/internal/auth/repository"
)

type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) error
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	LoggedUser(userID string) (*authdomain.PublicUser, error)
	ListUsers() ([]authdomain.PublicUser, error)
	GetUser(id string) (*authdomain.PublicUser, error)
	UpdateName(userID, name string) error
	DeleteUser(targetID, requesterID string) error
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *TokenService) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) error {
	var formErrors []string

	if n := utf8.RuneCountInString(req.Name); n < 2 || n > 15 {
		formErrors = append(formErrors, "Campo NOME precisa ter entre 2 e 15 caracteres")
	}
	if !validEmail(req.Email) {
		formErrors = append(formErrors, "Email inválido")
	}
	if n := len(req.Password); n < 6 || n > 20 {
		formErrors = append(formErrors, "Campo SENHA precisa ter entre 6 e 20 caracteres")
	}
	if len(formErrors) > 0 {
		return &ValidationError{Messages: formErrors}
	}

	nameExists, err := u.userRepo.FindByName(req.Name)
	if err != nil {
		return err
	}
	if nameExists != nil {
		return &ConflictError{Message: "Esse Nome já está em uso"}
	}

	emailExists, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if emailExists != nil {
		return &ConflictError{Message: "Esse EMAIL já está em uso"}
	}

	// Keep the cost in the 8-10 range so signups do not eat server CPU
	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return err
	}

	return u.userRepo.Create(&authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	})
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	var formErrors []string

	if !validEmail(req.Email) {
		formErrors = append(formErrors, "Email inválido")
	}
	if n := len(req.Password); n < 6 || n > 20 {
		formErrors = append(formErrors, "Campo SENHA precisa ter entre 6 e 20 caracteres")
	}
	if len(formErrors) > 0 {
		return nil, &ValidationError{Messages: formErrors}
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: token}, nil
}

func (u *authUsecase) LoggedUser(userID string) (*authdomain.PublicUser, error) {
	return u.GetUser(userID)
}

func (u *authUsecase) ListUsers() ([]authdomain.PublicUser, error) {
	return u.userRepo.FindAll()
}

func (u *authUsecase) GetUser(id string) (*authdomain.PublicUser, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user.Public(), nil
}

func (u *authUsecase) UpdateName(userID, name string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return &NotFoundError{Message: "Usuário não encontrado"}
	}

	if n := utf8.RuneCountInString(name); n < 2 || n > 15 {
		return &ValidationError{Messages: []string{"Campo NOME precisa ter entre 2 e 15 caracteres"}}
	}

	nameExists, err := u.userRepo.FindByName(name)
	if err != nil {
		return err
	}
	if nameExists != nil {
		return &ConflictError{Message: "Esse nome já está em uso"}
	}

	user.Name = name
	return u.userRepo.Update(user)
}

func (u *authUsecase) DeleteUser(targetID, requesterID string) error {
	target, err := u.userRepo.FindByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return &NotFoundError{Message: "Usuário não encontrado"}
	}

	// Re-check the requester against a concurrent account deletion
	requester, err := u.userRepo.FindByID(requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return &NotFoundError{Message: "Usuário não encontrado"}
	}

	return u.userRepo.Delete(targetID)
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
