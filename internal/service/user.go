package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"vacaybot/internal/models"
	"vacaybot/internal/store"
)

// CreateUserInput - входные данные нового пользователя.
type CreateUserInput struct {
	Email        string
	Name         string
	Role         string
	ManagerEmail string
	Office       string
	Teams        []string
}

// UserService - операции над справочником пользователей.
// Поиск по email - точное сравнение строк без нормализации регистра
// (текущее поведение, см. DESIGN.md).
type UserService struct {
	users  *store.Collection[*models.User]
	logger *logrus.Logger
}

func NewUserService(c *Collections, logger *logrus.Logger) *UserService {
	return &UserService{users: c.Users, logger: logger}
}

// Create создает пользователя с ролью employee по умолчанию.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	role := input.Role
	if role == "" {
		role = models.RoleEmployee
	}

	user := &models.User{
		ID:           newID("user"),
		Email:        input.Email,
		Name:         input.Name,
		Role:         role,
		ManagerEmail: input.ManagerEmail,
		Office:       input.Office,
		Teams:        input.Teams,
		CreatedAt:    store.NowISO(),
	}

	if err := s.users.Insert(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// GetByEmail возвращает пользователя по email или nil.
func (s *UserService) GetByEmail(email string) *models.User {
	users, err := s.users.Find(store.Selector{"email": email})
	if err != nil {
		s.logger.WithError(err).WithField("email", email).Error("Failed to get user by email")
		return nil
	}
	if len(users) == 0 {
		return nil
	}
	return users[0]
}

// GetByID возвращает пользователя по id или nil.
func (s *UserService) GetByID(id string) *models.User {
	user, err := s.users.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to get user")
		return nil
	}
	return user
}

// List возвращает всех пользователей.
func (s *UserService) List() []*models.User {
	users, err := s.users.Find(store.Selector{})
	if err != nil {
		s.logger.WithError(err).Error("Failed to list users")
		return []*models.User{}
	}
	return users
}

// Managers возвращает всех менеджеров.
func (s *UserService) Managers() []*models.User {
	users, err := s.users.Find(store.Selector{"role": models.RoleManager})
	if err != nil {
		s.logger.WithError(err).Error("Failed to list managers")
		return []*models.User{}
	}
	return users
}

// EmployeesOf возвращает сотрудников указанного менеджера.
func (s *UserService) EmployeesOf(managerEmail string) []*models.User {
	users, err := s.users.Find(store.Selector{
		"role":         models.RoleEmployee,
		"managerEmail": managerEmail,
	})
	if err != nil {
		s.logger.WithError(err).WithField("manager", managerEmail).Error("Failed to list employees")
		return []*models.User{}
	}
	return users
}

// UpdateTeams полностью заменяет набор команд пользователя (не дельта).
// nil - пользователя не существует.
func (s *UserService) UpdateTeams(userID string, teams []string) (*models.User, error) {
	updated, ok, err := s.users.Patch(userID, map[string]any{"teams": teams})
	if err != nil {
		return nil, fmt.Errorf("update teams: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return updated, nil
}
