package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"vacaybot/internal/models"
	"vacaybot/internal/store"
)

// CreateAbsenceInput - входные данные новой заявки.
type CreateAbsenceInput struct {
	UserID       string
	UserEmail    string
	Type         string
	Office       string
	StartDate    string
	EndDate      string
	Hours        float64
	Days         float64
	Note         string
	ManagerEmail string
}

// UpdateAbsenceInput - частичное обновление заявки.
// Note - указатель: nil означает "не трогать поле".
type UpdateAbsenceInput struct {
	Status string
	Note   *string
}

// AbsenceFilters - фильтры списка заявок. Пустая строка равнозначна
// отсутствию фильтра (решение зафиксировано в DESIGN.md).
type AbsenceFilters struct {
	UserID       string
	UserEmail    string
	Department   string // = office
	ManagerEmail string
	Status       string
	StartDate    string // нижняя граница startDate
	EndDate      string // верхняя граница startDate
}

// AbsenceService - операции над заявками поверх хранилища.
type AbsenceService struct {
	absences *store.Collection[*models.AbsenceRequest]
	users    *store.Collection[*models.User]
	logger   *logrus.Logger
}

func NewAbsenceService(c *Collections, logger *logrus.Logger) *AbsenceService {
	return &AbsenceService{
		absences: c.Absences,
		users:    c.Users,
		logger:   logger,
	}
}

// Create создает заявку: статус всегда pending, createdAt = updatedAt.
// Если менеджер не указан, он подтягивается из карточки пользователя -
// разрешение менеджера происходит здесь, а не у вызывающего.
func (s *AbsenceService) Create(input CreateAbsenceInput) (*models.AbsenceRequest, error) {
	managerEmail := input.ManagerEmail
	if managerEmail == "" && input.UserEmail != "" {
		user, err := s.findUserByEmail(input.UserEmail)
		if err != nil {
			s.logger.WithError(err).Warn("Failed to resolve manager for new absence")
		} else if user != nil {
			managerEmail = user.ManagerEmail
		}
	}

	now := store.NowISO()
	absence := &models.AbsenceRequest{
		ID:           newID("abs"),
		UserID:       input.UserID,
		UserEmail:    input.UserEmail,
		Type:         input.Type,
		Office:       input.Office,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Hours:        input.Hours,
		Days:         input.Days,
		Note:         input.Note,
		Status:       models.StatusPending,
		ManagerEmail: managerEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.absences.Insert(absence); err != nil {
		return nil, fmt.Errorf("create absence: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   absence.ID,
		"type": absence.Type,
		"user": absence.UserEmail,
	}).Info("Absence request created")

	return absence, nil
}

// Get возвращает заявку или nil. Ошибки хранения логируются и глушатся:
// читающему коду всегда есть что отрисовать.
func (s *AbsenceService) Get(id string) *models.AbsenceRequest {
	absence, err := s.absences.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to get absence")
		return nil
	}
	return absence
}

// Update вливает частичное обновление. Переход статуса в approved/denied/
// cancelled штампует соответствующую метку времени - ровно один раз: уже
// установленная метка никогда не перезаписывается и не очищается
// (история переходов сохраняется как аудит).
func (s *AbsenceService) Update(id string, input UpdateAbsenceInput) (*models.AbsenceRequest, error) {
	existing, err := s.absences.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("update absence: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	fields := map[string]any{}

	if input.Status != "" {
		fields["status"] = input.Status
		now := store.NowISO()
		switch input.Status {
		case models.StatusApproved:
			if existing.ApprovedAt == "" {
				fields["approvedAt"] = now
			}
		case models.StatusDenied:
			if existing.DeniedAt == "" {
				fields["deniedAt"] = now
			}
		case models.StatusCancelled:
			if existing.CancelledAt == "" {
				fields["cancelledAt"] = now
			}
		}
	}

	if input.Note != nil {
		fields["note"] = *input.Note
	}

	updated, ok, err := s.absences.Patch(id, fields)
	if err != nil {
		return nil, fmt.Errorf("update absence: %w", err)
	}
	if !ok {
		return nil, nil
	}

	return updated, nil
}

// Delete - мягкая отмена: заявка помечается cancelled, запись остается.
// false - заявки не существует.
func (s *AbsenceService) Delete(id string) (bool, error) {
	updated, err := s.Update(id, UpdateAbsenceInput{Status: models.StatusCancelled})
	if err != nil {
		return false, err
	}
	return updated != nil, nil
}

// List возвращает заявки по фильтрам в порядке создания.
// Ошибки чтения логируются, наружу уходит пустой список.
func (s *AbsenceService) List(filters AbsenceFilters) []*models.AbsenceRequest {
	selector := filters.selector()

	absences, err := s.absences.Find(selector)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list absences")
		return []*models.AbsenceRequest{}
	}
	return absences
}

// Watch - живой запрос по тем же фильтрам: колбек получает текущий список
// сразу и далее при каждом релевантном изменении.
func (s *AbsenceService) Watch(filters AbsenceFilters, callback func([]*models.AbsenceRequest)) (func(), error) {
	return s.absences.Subscribe(filters.selector(), callback)
}

func (f AbsenceFilters) selector() store.Selector {
	selector := store.Selector{}
	if f.UserID != "" {
		selector["userId"] = f.UserID
	}
	if f.UserEmail != "" {
		selector["userEmail"] = f.UserEmail
	}
	if f.Department != "" {
		selector["office"] = f.Department
	}
	if f.ManagerEmail != "" {
		selector["managerEmail"] = f.ManagerEmail
	}
	if f.Status != "" {
		selector["status"] = f.Status
	}
	if f.StartDate != "" || f.EndDate != "" {
		selector["startDate"] = store.Range{GTE: f.StartDate, LTE: f.EndDate}
	}
	return selector
}

func (s *AbsenceService) findUserByEmail(email string) (*models.User, error) {
	users, err := s.users.Find(store.Selector{"email": email})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}
