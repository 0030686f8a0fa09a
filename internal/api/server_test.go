package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacaybot/internal/models"
	"vacaybot/internal/service"
	"vacaybot/internal/store"
)

type testEnv struct {
	server *Server
	users  *service.UserService
	roles  *service.RoleService
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	collections, err := service.NewCollections(s)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	absences := service.NewAbsenceService(collections, logger)
	users := service.NewUserService(collections, logger)
	roles := service.NewRoleService(collections, logger)

	return &testEnv{
		server: NewServer(absences, users, roles, logger),
		users:  users,
		roles:  roles,
	}
}

// envelope - конверт ответа с данными произвольной формы.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (e *testEnv) request(t *testing.T, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func validAbsenceBody() map[string]any {
	return map[string]any{
		"userId":       "u1",
		"userEmail":    "alice@example.com",
		"type":         models.AbsenceTypeVacation,
		"office":       "ljubljana",
		"startDate":    "2025-07-01",
		"endDate":      "2025-07-14",
		"days":         10,
		"managerEmail": "bob@example.com",
	}
}

func TestCreateAbsenceEndpoint(t *testing.T) {
	env := newTestServer(t)

	status, resp := env.request(t, http.MethodPost, "/api/absences", validAbsenceBody())
	require.Equal(t, http.StatusCreated, status)
	require.True(t, resp.Success)

	var created models.AbsenceRequest
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "alice@example.com", created.UserEmail)
}

func TestCreateAbsenceBadBody(t *testing.T) {
	env := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/absences", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.server.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAbsenceIncomplete(t *testing.T) {
	env := newTestServer(t)

	body := validAbsenceBody()
	delete(body, "startDate")
	status, resp := env.request(t, http.MethodPost, "/api/absences", body)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestListAbsencesWithFilters(t *testing.T) {
	env := newTestServer(t)

	env.request(t, http.MethodPost, "/api/absences", validAbsenceBody())

	other := validAbsenceBody()
	other["userEmail"] = "carol@example.com"
	other["office"] = "munich"
	env.request(t, http.MethodPost, "/api/absences", other)

	status, resp := env.request(t, http.MethodGet, "/api/absences", nil)
	require.Equal(t, http.StatusOK, status)
	var all []models.AbsenceRequest
	require.NoError(t, json.Unmarshal(resp.Data, &all))
	assert.Len(t, all, 2)

	_, resp = env.request(t, http.MethodGet, "/api/absences?userEmail=carol@example.com", nil)
	var filtered []models.AbsenceRequest
	require.NoError(t, json.Unmarshal(resp.Data, &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "munich", filtered[0].Office)

	_, resp = env.request(t, http.MethodGet, "/api/absences?status=approved", nil)
	var none []models.AbsenceRequest
	require.NoError(t, json.Unmarshal(resp.Data, &none))
	assert.Empty(t, none)
}

func TestGetUpdateDeleteAbsence(t *testing.T) {
	env := newTestServer(t)

	_, createResp := env.request(t, http.MethodPost, "/api/absences", validAbsenceBody())
	var created models.AbsenceRequest
	require.NoError(t, json.Unmarshal(createResp.Data, &created))

	status, resp := env.request(t, http.MethodGet, "/api/absences/"+created.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)

	status, resp = env.request(t, http.MethodPatch, "/api/absences/"+created.ID,
		map[string]any{"status": models.StatusApproved})
	require.Equal(t, http.StatusOK, status)
	var updated models.AbsenceRequest
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.NotEmpty(t, updated.ApprovedAt)

	status, _ = env.request(t, http.MethodDelete, "/api/absences/"+created.ID, nil)
	require.Equal(t, http.StatusOK, status)

	// Мягкая отмена: запись осталась, статус cancelled
	status, resp = env.request(t, http.MethodGet, "/api/absences/"+created.ID, nil)
	require.Equal(t, http.StatusOK, status)
	var cancelled models.AbsenceRequest
	require.NoError(t, json.Unmarshal(resp.Data, &cancelled))
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	status, _ = env.request(t, http.MethodGet, "/api/absences/abs_nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = env.request(t, http.MethodPatch, "/api/absences/abs_nope", map[string]any{"status": "approved"})
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = env.request(t, http.MethodDelete, "/api/absences/abs_nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOutOfOfficePresets(t *testing.T) {
	env := newTestServer(t)

	env.request(t, http.MethodPost, "/api/absences", validAbsenceBody())

	for _, target := range []string{
		"/api/outOfOffice/department/ljubljana",
		"/api/outOfOffice/manager/bob@example.com",
		"/api/outOfOffice/user/alice@example.com",
	} {
		status, resp := env.request(t, http.MethodGet, target, nil)
		require.Equal(t, http.StatusOK, status, target)
		var list []models.AbsenceRequest
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		assert.Len(t, list, 1, target)
	}

	status, resp := env.request(t, http.MethodGet, "/api/outOfOffice/department/munich", nil)
	require.Equal(t, http.StatusOK, status)
	var empty []models.AbsenceRequest
	require.NoError(t, json.Unmarshal(resp.Data, &empty))
	assert.Empty(t, empty)
}

func TestUsersEndpoints(t *testing.T) {
	env := newTestServer(t)

	user, err := env.users.Create(service.CreateUserInput{
		Email: "alice@example.com", Name: "Alice", Office: "ljubljana",
		Teams: []string{"Admin"},
	})
	require.NoError(t, err)

	status, resp := env.request(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, status)
	var list []models.User
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)

	status, resp = env.request(t, http.MethodPatch, "/api/users/"+user.ID+"/teams",
		map[string]any{"teams": []string{"Lead", "Ops"}})
	require.Equal(t, http.StatusOK, status)
	var updated models.User
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, []string{"Lead", "Ops"}, updated.Teams)

	status, _ = env.request(t, http.MethodPatch, "/api/users/user_nope/teams",
		map[string]any{"teams": []string{}})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRolesEndpoints(t *testing.T) {
	env := newTestServer(t)

	status, resp := env.request(t, http.MethodPost, "/api/roles", map[string]any{"name": "Manager"})
	require.Equal(t, http.StatusCreated, status)
	var role models.Role
	require.NoError(t, json.Unmarshal(resp.Data, &role))
	assert.Equal(t, "Manager", role.Name)

	// Дубликат - конфликт
	status, resp = env.request(t, http.MethodPost, "/api/roles", map[string]any{"name": "Manager"})
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, resp.Success)

	status, resp = env.request(t, http.MethodGet, "/api/roles", nil)
	require.Equal(t, http.StatusOK, status)
	var roles []models.Role
	require.NoError(t, json.Unmarshal(resp.Data, &roles))
	assert.Len(t, roles, 1)

	status, resp = env.request(t, http.MethodPut, "/api/roles/rename",
		map[string]any{"oldName": "Manager", "newName": "Lead"})
	require.Equal(t, http.StatusOK, status)
	var renamed models.Role
	require.NoError(t, json.Unmarshal(resp.Data, &renamed))
	assert.Equal(t, "Lead", renamed.Name)

	status, _ = env.request(t, http.MethodPut, "/api/roles/rename",
		map[string]any{"oldName": "Ghost", "newName": "Phantom"})
	assert.Equal(t, http.StatusNotFound, status)

	status, resp = env.request(t, http.MethodGet, "/api/roles/Lead/usage", nil)
	require.Equal(t, http.StatusOK, status)
	var usage roleUsageResponse
	require.NoError(t, json.Unmarshal(resp.Data, &usage))
	assert.Equal(t, "Lead", usage.Name)
	assert.Equal(t, 0, usage.Count)

	status, _ = env.request(t, http.MethodDelete, "/api/roles/"+role.ID, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = env.request(t, http.MethodDelete, "/api/roles/"+role.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHolidaysEndpoint(t *testing.T) {
	env := newTestServer(t)

	status, resp := env.request(t, http.MethodGet, "/api/holidays/ljubljana", nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.NotEmpty(t, list)

	status, _ = env.request(t, http.MethodGet, "/api/holidays/atlantis", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
