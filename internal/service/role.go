package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"vacaybot/internal/models"
	"vacaybot/internal/store"
)

// RoleService - операции над командными ролями. Переименование и удаление
// каскадно переписывают teams у пользователей; единый писатель хранилища
// делает каскад атомарным с точки зрения вызывающего.
type RoleService struct {
	roles  *store.Collection[*models.Role]
	users  *store.Collection[*models.User]
	logger *logrus.Logger
}

func NewRoleService(c *Collections, logger *logrus.Logger) *RoleService {
	return &RoleService{roles: c.Roles, users: c.Users, logger: logger}
}

// Create создает роль. Имя обрезается; если роль с таким именем уже есть -
// DuplicateError. Сравнение имен регистрозависимое.
func (s *RoleService) Create(name string) (*models.Role, error) {
	trimmed := strings.TrimSpace(name)

	existing, err := s.findByName(trimmed)
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateError{Name: trimmed}
	}

	now := store.NowISO()
	role := &models.Role{
		ID:        newID("role"),
		Name:      trimmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.roles.Insert(role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}

	return role, nil
}

// List возвращает все роли.
func (s *RoleService) List() []*models.Role {
	roles, err := s.roles.Find(store.Selector{})
	if err != nil {
		s.logger.WithError(err).Error("Failed to list roles")
		return []*models.Role{}
	}
	return roles
}

// GetByName возвращает роль по имени (после обрезки) или nil.
func (s *RoleService) GetByName(name string) *models.Role {
	role, err := s.findByName(strings.TrimSpace(name))
	if err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to get role")
		return nil
	}
	return role
}

// Rename переименовывает роль и переписывает teams у всех пользователей,
// ссылавшихся на старое имя. nil без ошибки - роли с oldName нет.
// Затронутые пользователи собираются до первого патча; ошибка хранения
// прерывает каскад и уходит вызывающему.
func (s *RoleService) Rename(oldName, newName string) (*models.Role, error) {
	oldTrimmed := strings.TrimSpace(oldName)
	newTrimmed := strings.TrimSpace(newName)

	role, err := s.findByName(oldTrimmed)
	if err != nil {
		return nil, fmt.Errorf("rename role: %w", err)
	}
	if role == nil {
		return nil, nil
	}

	affected, err := s.usersInTeam(oldTrimmed)
	if err != nil {
		return nil, fmt.Errorf("rename role: %w", err)
	}

	renamed, ok, err := s.roles.Patch(role.ID, map[string]any{"name": newTrimmed})
	if err != nil {
		return nil, fmt.Errorf("rename role: %w", err)
	}
	if !ok {
		return nil, nil
	}

	for _, user := range affected {
		teams := make([]string, len(user.Teams))
		for i, team := range user.Teams {
			if team == oldTrimmed {
				teams[i] = newTrimmed
			} else {
				teams[i] = team
			}
		}
		if _, _, err := s.users.Patch(user.ID, map[string]any{"teams": teams}); err != nil {
			return nil, fmt.Errorf("rename role: rewrite teams for %s: %w", user.ID, err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"old":   oldTrimmed,
		"new":   newTrimmed,
		"users": len(affected),
	}).Info("Role renamed")

	return renamed, nil
}

// Delete удаляет роль и вычищает ее из teams всех пользователей.
// false - роли не существует.
func (s *RoleService) Delete(id string) (bool, error) {
	role, err := s.roles.FindByID(id)
	if err != nil {
		return false, fmt.Errorf("delete role: %w", err)
	}
	if role == nil {
		return false, nil
	}

	affected, err := s.usersInTeam(role.Name)
	if err != nil {
		return false, fmt.Errorf("delete role: %w", err)
	}

	for _, user := range affected {
		teams := make([]string, 0, len(user.Teams))
		for _, team := range user.Teams {
			if team != role.Name {
				teams = append(teams, team)
			}
		}
		if _, _, err := s.users.Patch(user.ID, map[string]any{"teams": teams}); err != nil {
			return false, fmt.Errorf("delete role: strip teams for %s: %w", user.ID, err)
		}
	}

	removed, err := s.roles.Remove(id)
	if err != nil {
		return false, fmt.Errorf("delete role: %w", err)
	}
	return removed, nil
}

// UsageCount считает пользователей, у которых роль присутствует в teams.
func (s *RoleService) UsageCount(name string) int {
	users, err := s.usersInTeam(strings.TrimSpace(name))
	if err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to count role usage")
		return 0
	}
	return len(users)
}

func (s *RoleService) findByName(trimmed string) (*models.Role, error) {
	roles, err := s.roles.Find(store.Selector{"name": trimmed})
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, nil
	}
	return roles[0], nil
}

// usersInTeam перебирает всех пользователей: членство в команде - поиск
// по массиву, селекторы такого не умеют.
func (s *RoleService) usersInTeam(name string) ([]*models.User, error) {
	users, err := s.users.Find(store.Selector{})
	if err != nil {
		return nil, err
	}

	var matched []*models.User
	for _, user := range users {
		if user.InTeam(name) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}
