package models

// Статусы заявки на отсутствие.
const (
	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusApproved  = "approved"
	StatusDenied    = "denied"
	StatusCancelled = "cancelled"
)

// AbsenceRequest - заявка на отсутствие. Даты храним ISO-строками
// (YYYY-MM-DD для дат, полный ISO 8601 для моментов времени), чтобы
// диапазонные фильтры работали лексикографически.
type AbsenceRequest struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	UserEmail    string  `json:"userEmail"`
	Type         string  `json:"type"`
	Office       string  `json:"office"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate,omitempty"`
	Hours        float64 `json:"hours,omitempty"`
	Days         float64 `json:"days,omitempty"`
	Note         string  `json:"note,omitempty"`
	Status       string  `json:"status"`
	ManagerEmail string  `json:"managerEmail,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	ApprovedAt   string  `json:"approvedAt,omitempty"`
	DeniedAt     string  `json:"deniedAt,omitempty"`
	CancelledAt  string  `json:"cancelledAt,omitempty"`
}

func (a *AbsenceRequest) PrimaryKey() string {
	return a.ID
}

// IsPending проверяет, ждет ли заявка решения.
func (a *AbsenceRequest) IsPending() bool {
	return a.Status == StatusPending
}

// IsClosed проверяет, принято ли по заявке финальное решение.
func (a *AbsenceRequest) IsClosed() bool {
	return a.Status == StatusApproved || a.Status == StatusDenied || a.Status == StatusCancelled
}

// Единицы длительности отсутствия.
const (
	DurationHours = "hours"
	DurationDays  = "days"
	DurationBoth  = "both"
)

// Типы отсутствий.
const (
	AbsenceTypeVacation       = "vacation"
	AbsenceTypeSickLeave      = "sick_leave"
	AbsenceTypeParentalLeave  = "parental_leave"
	AbsenceTypeSickChild      = "sick_child"
	AbsenceTypeWorkFromHome   = "work_from_home"
	AbsenceTypeKnowledgeTime  = "knowledge_time"
	AbsenceTypeFlexTime       = "flex_time"
	AbsenceTypePaidLeave      = "paid_leave"
	AbsenceTypeUnpaidLeave    = "unpaid_leave"
	AbsenceTypeCareRelative   = "care_relative"
	AbsenceTypeMilitaryDuties = "military_duties"
)

// AbsenceTypeConfig - статическая политика типа отсутствия.
type AbsenceTypeConfig struct {
	ID               string
	RequiresApproval bool
	AffectsCalendar  bool
	DurationType     string
}

var absenceTypes = map[string]AbsenceTypeConfig{
	AbsenceTypeVacation:       {ID: AbsenceTypeVacation, RequiresApproval: true, AffectsCalendar: true, DurationType: DurationDays},
	AbsenceTypeSickLeave:      {ID: AbsenceTypeSickLeave, RequiresApproval: false, AffectsCalendar: true, DurationType: DurationDays},
	AbsenceTypeParentalLeave:  {ID: AbsenceTypeParentalLeave, RequiresApproval: true, AffectsCalendar: true, DurationType: DurationDays},
	AbsenceTypeSickChild:      {ID: AbsenceTypeSickChild, RequiresApproval: false, AffectsCalendar: true, DurationType: DurationDays},
	AbsenceTypeWorkFromHome:   {ID: AbsenceTypeWorkFromHome, RequiresApproval: false, AffectsCalendar: false, DurationType: DurationDays},
	AbsenceTypeKnowledgeTime:  {ID: AbsenceTypeKnowledgeTime, RequiresApproval: true, AffectsCalendar: false, DurationType: DurationDays},
	AbsenceTypeFlexTime:       {ID: AbsenceTypeFlexTime, RequiresApproval: false, AffectsCalendar: false, DurationType: DurationHours},
	AbsenceTypePaidLeave:      {ID: AbsenceTypePaidLeave, RequiresApproval: true, AffectsCalendar: true, DurationType: DurationBoth},
	AbsenceTypeUnpaidLeave:    {ID: AbsenceTypeUnpaidLeave, RequiresApproval: true, AffectsCalendar: true, DurationType: DurationBoth},
	AbsenceTypeCareRelative:   {ID: AbsenceTypeCareRelative, RequiresApproval: true, AffectsCalendar: true, DurationType: DurationDays},
	AbsenceTypeMilitaryDuties: {ID: AbsenceTypeMilitaryDuties, RequiresApproval: false, AffectsCalendar: true, DurationType: DurationDays},
}

// GetAbsenceTypeConfig возвращает политику типа или nil для неизвестного id.
func GetAbsenceTypeConfig(typeID string) *AbsenceTypeConfig {
	cfg, ok := absenceTypes[typeID]
	if !ok {
		return nil
	}
	return &cfg
}

// AbsenceTypeIDs возвращает все известные типы в стабильном порядке.
func AbsenceTypeIDs() []string {
	return []string{
		AbsenceTypeVacation,
		AbsenceTypeSickLeave,
		AbsenceTypeParentalLeave,
		AbsenceTypeSickChild,
		AbsenceTypeWorkFromHome,
		AbsenceTypeKnowledgeTime,
		AbsenceTypeFlexTime,
		AbsenceTypePaidLeave,
		AbsenceTypeUnpaidLeave,
		AbsenceTypeCareRelative,
		AbsenceTypeMilitaryDuties,
	}
}
