package flow

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"vacaybot/internal/models"
	"vacaybot/internal/service"
)

// Controller ведет линейный диалог заявки: type -> office -> [duration] ->
// dates -> note -> review -> submitted. Состояние не хранит - принимает
// и возвращает State, поэтому один контроллер обслуживает и веб, и чат.
type Controller struct {
	absences *service.AbsenceService
	logger   *logrus.Logger
}

func NewController(absences *service.AbsenceService, logger *logrus.Logger) *Controller {
	return &Controller{absences: absences, logger: logger}
}

// Start начинает новую заявку с главного экрана, не трогая уже
// накопленные данные (userEmail и т.п. переживают рестарт формы).
func (c *Controller) Start(s State) State {
	s.Step = StepType
	return s
}

// SelectType запоминает тип отсутствия и ведет к выбору офиса.
func (c *Controller) SelectType(s State, absenceType string) (State, error) {
	cfg := models.GetAbsenceTypeConfig(absenceType)
	if cfg == nil {
		return s, fmt.Errorf("unknown absence type %q", absenceType)
	}

	s.Data.Type = absenceType
	s.Step = StepOffice
	return s, nil
}

// SelectOffice запоминает офис. Если у типа единица длительности both -
// дальше шаг duration, иначе единица берется из конфигурации типа и шаг
// duration пропускается.
func (c *Controller) SelectOffice(s State, office string) (State, error) {
	if models.GetOfficeConfig(office) == nil {
		return s, fmt.Errorf("unknown office %q", office)
	}

	cfg := models.GetAbsenceTypeConfig(s.Data.Type)
	if cfg == nil {
		return s, fmt.Errorf("absence type not selected")
	}

	s.Data.Office = office
	if cfg.DurationType == models.DurationBoth {
		s.Step = StepDuration
	} else {
		s.Data.DurationType = cfg.DurationType
		s.Step = StepDates
	}
	return s, nil
}

// SelectDuration запоминает выбранную единицу (hours/days) и ведет к датам.
func (c *Controller) SelectDuration(s State, durationType string) (State, error) {
	if durationType != models.DurationHours && durationType != models.DurationDays {
		return s, fmt.Errorf("unknown duration type %q", durationType)
	}

	s.Data.DurationType = durationType
	s.Step = StepDates
	return s, nil
}

// SetDates запоминает период и количество часов/дней, ведет к примечанию.
func (c *Controller) SetDates(s State, startDate, endDate string, hours, days float64) State {
	s.Data.StartDate = startDate
	s.Data.EndDate = endDate
	s.Data.Hours = hours
	s.Data.Days = days
	s.Step = StepNote
	return s
}

// SetNote запоминает примечание (может быть пустым) и ведет на сверку.
func (c *Controller) SetNote(s State, note string) State {
	s.Data.Note = note
	s.Step = StepReview
	return s
}

// Back отступает на предыдущий шаг канонического порядка. С type возврат
// на home сбрасывает накопленные данные; с home - ничего не происходит;
// боковые экраны и submitted закрываются на home.
func (c *Controller) Back(s State) State {
	if s.Step == StepHome {
		return s
	}

	if sideScreens[s.Step] {
		s.Step = StepHome
		return s
	}

	if s.Step == StepSubmitted {
		return NewState()
	}

	for i, step := range stepOrder {
		if step != s.Step {
			continue
		}
		if i == 0 {
			// С первого шага формы - домой, без остатков.
			next := NewState()
			next.Language = s.Language
			return next
		}
		s.Step = stepOrder[i-1]
		return s
	}

	return s
}

// OpenScreen открывает боковой экран с главного. С других шагов - no-op:
// форма не должна терять позицию.
func (c *Controller) OpenScreen(s State, screen Step) State {
	if !sideScreens[screen] || s.Step != StepHome {
		return s
	}
	s.Step = screen
	return s
}

// CloseScreen закрывает боковой экран обратно на главный.
func (c *Controller) CloseScreen(s State) State {
	if sideScreens[s.Step] {
		s.Step = StepHome
	}
	return s
}

// Submit отправляет заявку со сверки. При ошибке сервиса состояние не
// меняется и данные не теряются - пользователь может повторить отправку.
func (c *Controller) Submit(s State) (State, *models.AbsenceRequest, error) {
	if s.Step != StepReview {
		return s, nil, fmt.Errorf("submit is only available from review, current step %q", s.Step)
	}

	absence, err := c.absences.Create(service.CreateAbsenceInput{
		UserID:       s.Data.UserID,
		UserEmail:    s.Data.UserEmail,
		Type:         s.Data.Type,
		Office:       s.Data.Office,
		StartDate:    s.Data.StartDate,
		EndDate:      s.Data.EndDate,
		Hours:        s.Data.Hours,
		Days:         s.Data.Days,
		Note:         s.Data.Note,
		ManagerEmail: s.Data.ManagerEmail,
	})
	if err != nil {
		c.logger.WithError(err).Warn("Absence submission failed, keeping review state")
		return s, nil, err
	}

	s.Step = StepSubmitted
	return s, absence, nil
}

// Reset возвращает диалог в исходное состояние: home, пустые данные.
func (c *Controller) Reset() State {
	return NewState()
}
