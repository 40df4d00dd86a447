package services

import (
	"errors"
	"strings"
	"time"

	"github.com/labassistantpro/labassistant/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike; callers must not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users    AuthUserRepository
	location *time.Location
}

func NewAuthService(users AuthUserRepository, location *time.Location) *AuthService {
	return &AuthService{users: users, location: location}
}

type RegistrationInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	username := strings.TrimSpace(input.Username)

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Email:        strings.TrimSpace(input.Email),
		FullName:     strings.TrimSpace(input.FullName),
		CreatedAt:    time.Now().In(service.location),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index catches registrations racing past the
		// existence check.
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}

func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(passwordHash))
}
