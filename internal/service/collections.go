package service

import (
	"vacaybot/internal/models"
	"vacaybot/internal/store"
)

// Имена коллекций хранилища.
const (
	CollectionAbsences = "absences"
	CollectionUsers    = "users"
	CollectionRoles    = "roles"
)

var absenceSchema = store.Schema{
	Required: []string{"id", "userId", "userEmail", "type", "office", "startDate", "status", "createdAt", "updatedAt"},
	Fields: map[string]store.FieldKind{
		"id":           store.KindString,
		"userId":       store.KindString,
		"userEmail":    store.KindString,
		"type":         store.KindString,
		"office":       store.KindString,
		"startDate":    store.KindString,
		"endDate":      store.KindString,
		"hours":        store.KindNumber,
		"days":         store.KindNumber,
		"note":         store.KindString,
		"status":       store.KindString,
		"managerEmail": store.KindString,
		"createdAt":    store.KindString,
		"updatedAt":    store.KindString,
		"approvedAt":   store.KindString,
		"deniedAt":     store.KindString,
		"cancelledAt":  store.KindString,
	},
}

var userSchema = store.Schema{
	Required: []string{"id", "email", "name", "role", "office", "createdAt"},
	Fields: map[string]store.FieldKind{
		"id":           store.KindString,
		"email":        store.KindString,
		"name":         store.KindString,
		"role":         store.KindString,
		"managerEmail": store.KindString,
		"office":       store.KindString,
		"teams":        store.KindArray,
		"createdAt":    store.KindString,
		"updatedAt":    store.KindString,
	},
}

var roleSchema = store.Schema{
	Required: []string{"id", "name", "createdAt", "updatedAt"},
	Fields: map[string]store.FieldKind{
		"id":        store.KindString,
		"name":      store.KindString,
		"createdAt": store.KindString,
		"updatedAt": store.KindString,
	},
}

// Collections - три коллекции приложения поверх одного хранилища.
// Создаются один раз в main и внедряются в сервисы.
type Collections struct {
	Absences *store.Collection[*models.AbsenceRequest]
	Users    *store.Collection[*models.User]
	Roles    *store.Collection[*models.Role]
}

// NewCollections регистрирует все коллекции в открытом хранилище.
func NewCollections(s *store.Store) (*Collections, error) {
	absences, err := store.NewCollection[*models.AbsenceRequest](s, CollectionAbsences, absenceSchema)
	if err != nil {
		return nil, err
	}

	users, err := store.NewCollection[*models.User](s, CollectionUsers, userSchema)
	if err != nil {
		return nil, err
	}

	roles, err := store.NewCollection[*models.Role](s, CollectionRoles, roleSchema)
	if err != nil {
		return nil, err
	}

	return &Collections{Absences: absences, Users: users, Roles: roles}, nil
}
