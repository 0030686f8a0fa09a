package service

import (
	"github.com/sirupsen/logrus"

	"vacaybot/internal/models"
	"vacaybot/internal/store"
)

// SeedDemoData наполняет пустое хранилище демо-данными: пара
// сотрудник/менеджер, две заявки и базовые роли. Непустые коллекции
// не трогаются.
func SeedDemoData(c *Collections, logger *logrus.Logger) error {
	if c.Users.Count() == 0 && c.Absences.Count() == 0 {
		if err := seedUsers(c); err != nil {
			return err
		}
		if err := seedAbsences(c); err != nil {
			return err
		}
		logger.Info("Seeded demo users and absence requests")
	}

	if c.Roles.Count() == 0 {
		if err := seedRoles(c); err != nil {
			return err
		}
		logger.Info("Seeded default roles")
	}

	return nil
}

func seedUsers(c *Collections) error {
	now := store.NowISO()

	employee := &models.User{
		ID:           "demo-employee-1",
		Email:        "employee@demo.com",
		Name:         "Demo Employee",
		Role:         models.RoleEmployee,
		ManagerEmail: "manager@demo.com",
		Office:       models.OfficeLjubljana,
		CreatedAt:    now,
	}
	if err := c.Users.Insert(employee); err != nil {
		return err
	}

	manager := &models.User{
		ID:        "demo-manager-1",
		Email:     "manager@demo.com",
		Name:      "Demo Manager",
		Role:      models.RoleManager,
		Office:    models.OfficeLjubljana,
		CreatedAt: now,
	}
	return c.Users.Insert(manager)
}

func seedAbsences(c *Collections) error {
	now := store.NowISO()

	approved := &models.AbsenceRequest{
		ID:           newID("abs"),
		UserID:       "employee@demo.com",
		UserEmail:    "employee@demo.com",
		Type:         models.AbsenceTypeVacation,
		Office:       models.OfficeLjubljana,
		StartDate:    "2025-11-15",
		EndDate:      "2025-11-23",
		ManagerEmail: "manager@demo.com",
		Status:       models.StatusApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
		ApprovedAt:   now,
	}
	if err := c.Absences.Insert(approved); err != nil {
		return err
	}

	pending := &models.AbsenceRequest{
		ID:           newID("abs"),
		UserID:       "employee@demo.com",
		UserEmail:    "employee@demo.com",
		Type:         models.AbsenceTypeSickChild,
		Office:       models.OfficeLjubljana,
		StartDate:    "2025-11-14",
		EndDate:      "2025-11-17",
		Note:         "test",
		ManagerEmail: "manager@demo.com",
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return c.Absences.Insert(pending)
}

func seedRoles(c *Collections) error {
	now := store.NowISO()

	for _, name := range []string{"Manager", "Employee", "Admin"} {
		role := &models.Role{
			ID:        newID("role"),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := c.Roles.Insert(role); err != nil {
			return err
		}
	}
	return nil
}
