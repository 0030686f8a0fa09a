package flow

// Step - шаг диалога. Значения попадают в токен как есть.
type Step string

const (
	StepHome      Step = "home"
	StepType      Step = "type"
	StepOffice    Step = "office"
	StepDuration  Step = "duration"
	StepDates     Step = "dates"
	StepNote      Step = "note"
	StepReview    Step = "review"
	StepSubmitted Step = "submitted"

	// Боковые экраны, доступные с главного.
	StepHolidays      Step = "holidays"
	StepHistory       Step = "history"
	StepFeatures      Step = "features"
	StepDocumentation Step = "documentation"
)

// stepOrder - канонический порядок шагов формы для навигации назад.
var stepOrder = []Step{StepType, StepOffice, StepDuration, StepDates, StepNote, StepReview}

// sideScreens - экраны, открываемые с home и закрываемые обратно в home.
var sideScreens = map[Step]bool{
	StepHolidays:      true,
	StepHistory:       true,
	StepFeatures:      true,
	StepDocumentation: true,
}

// Data - накопленные ответы формы. Закрытый набор полей: все потребители
// читают только их, произвольных ключей в токене не бывает.
type Data struct {
	Type         string  `json:"type,omitempty"`
	Office       string  `json:"office,omitempty"`
	StartDate    string  `json:"startDate,omitempty"`
	EndDate      string  `json:"endDate,omitempty"`
	Hours        float64 `json:"hours,omitempty"`
	Days         float64 `json:"days,omitempty"`
	DurationType string  `json:"durationType,omitempty"`
	Note         string  `json:"note,omitempty"`
	UserID       string  `json:"userId,omitempty"`
	UserEmail    string  `json:"userEmail,omitempty"`
	ManagerEmail string  `json:"managerEmail,omitempty"`
}

// State - состояние диалога. Живет только в закодированном токене
// (URL или кнопка в чате), на сервере не хранится.
type State struct {
	Step     Step   `json:"step"`
	Data     Data   `json:"data"`
	Language string `json:"language,omitempty"`
}

// NewState возвращает свежее состояние: главный экран, пустые ответы.
func NewState() State {
	return State{Step: StepHome, Data: Data{}}
}

// IsValidStep проверяет, что шаг из токена нам известен.
func IsValidStep(s Step) bool {
	switch s {
	case StepHome, StepType, StepOffice, StepDuration, StepDates,
		StepNote, StepReview, StepSubmitted:
		return true
	}
	return sideScreens[s]
}
