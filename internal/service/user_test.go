package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacaybot/internal/models"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	collections, logger := newTestCollections(t)
	return NewUserService(collections, logger)
}

func TestCreateUserDefaults(t *testing.T) {
	svc := newTestUserService(t)

	user, err := svc.Create(CreateUserInput{
		Email:  "alice@example.com",
		Name:   "Alice",
		Office: "ljubljana",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(user.ID, "user_"))
	assert.Equal(t, models.RoleEmployee, user.Role)
	assert.NotEmpty(t, user.CreatedAt)

	manager, err := svc.Create(CreateUserInput{
		Email:  "bob@example.com",
		Name:   "Bob",
		Role:   models.RoleManager,
		Office: "munich",
	})
	require.NoError(t, err)
	assert.True(t, manager.IsManager())
}

func TestGetByEmailExactMatch(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Create(CreateUserInput{Email: "alice@example.com", Name: "Alice", Office: "ljubljana"})
	require.NoError(t, err)

	user := svc.GetByEmail("alice@example.com")
	require.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)

	// Сравнение точное, регистр не нормализуется
	assert.Nil(t, svc.GetByEmail("Alice@Example.com"))
	assert.Nil(t, svc.GetByEmail("nobody@example.com"))
}

func TestGetByID(t *testing.T) {
	svc := newTestUserService(t)

	created, err := svc.Create(CreateUserInput{Email: "alice@example.com", Name: "Alice", Office: "ljubljana"})
	require.NoError(t, err)

	user := svc.GetByID(created.ID)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)

	assert.Nil(t, svc.GetByID("user_nope"))
}

func TestManagersAndEmployees(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Create(CreateUserInput{Email: "boss@example.com", Name: "Boss", Role: models.RoleManager, Office: "munich"})
	require.NoError(t, err)
	_, err = svc.Create(CreateUserInput{Email: "alice@example.com", Name: "Alice", Office: "ljubljana", ManagerEmail: "boss@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(CreateUserInput{Email: "carol@example.com", Name: "Carol", Office: "ljubljana", ManagerEmail: "other@example.com"})
	require.NoError(t, err)

	managers := svc.Managers()
	require.Len(t, managers, 1)
	assert.Equal(t, "boss@example.com", managers[0].Email)

	reports := svc.EmployeesOf("boss@example.com")
	require.Len(t, reports, 1)
	assert.Equal(t, "alice@example.com", reports[0].Email)

	assert.Len(t, svc.List(), 3)
}

func TestUpdateTeamsReplaces(t *testing.T) {
	svc := newTestUserService(t)

	user, err := svc.Create(CreateUserInput{
		Email:  "alice@example.com",
		Name:   "Alice",
		Office: "ljubljana",
		Teams:  []string{"Manager", "Admin"},
	})
	require.NoError(t, err)

	// Полная замена набора, не дельта
	updated, err := svc.UpdateTeams(user.ID, []string{"Lead"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"Lead"}, updated.Teams)

	updated, err = svc.UpdateTeams(user.ID, []string{})
	require.NoError(t, err)
	assert.Empty(t, updated.Teams)

	missing, err := svc.UpdateTeams("user_nope", []string{"Lead"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
