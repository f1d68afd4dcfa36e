package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/mealtrail/internal/models"
)

var (
	ErrNameInvalid   = errors.New("user name invalid")
	ErrEmailInvalid  = errors.New("user email invalid")
	ErrEmailTaken    = errors.New("user email already taken")
	ErrSessionLinked = errors.New("session already linked to a user")
)

type UserStore interface {
	Create(user *models.User) error
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsBySessionID(sessionID string) (bool, error)
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// NormalizeEmail lowercases, trims and syntax-checks an email address,
// returning "" when it does not parse.
func NormalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

// Create links a new user to the session token. Each session owns at most
// one user, and emails are unique across all users.
func (service *UserService) Create(sessionID string, name string, email string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, ErrNameInvalid
	}

	normalizedEmail := NormalizeEmail(email)
	if normalizedEmail == "" {
		return models.User{}, ErrEmailInvalid
	}

	linked, err := service.users.ExistsBySessionID(sessionID)
	if err != nil {
		return models.User{}, fmt.Errorf("check session link: %w", err)
	}
	if linked {
		return models.User{}, ErrSessionLinked
	}

	taken, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return models.User{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     normalizedEmail,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
