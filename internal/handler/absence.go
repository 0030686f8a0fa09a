package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"vacaybot/internal/flow"
	"vacaybot/internal/models"
	"vacaybot/internal/service"
	"vacaybot/pkg/holidays"
	"vacaybot/pkg/i18n"
)

// startAbsenceFlow начинает диалог заявки: клавиатура типов отсутствия
// плюс ссылка на веб-форму с тем же состоянием.
func (h *Handler) startAbsenceFlow(message *tgbotapi.Message) {
	lang := h.language(message.From)

	state := flow.NewState()
	state.Language = string(lang)
	state.Data.UserID = strconv.FormatInt(message.Chat.ID, 10)
	state = h.controller.Start(state)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(models.AbsenceTypeIDs()))
	for _, typeID := range models.AbsenceTypeIDs() {
		label := i18n.T("absence.types."+typeID, lang)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "flow:type:"+typeID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonURL(i18n.T("common.openForm", lang), h.webappURL(state)),
	))

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏖 "+i18n.T("absence.selectType", lang))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	h.client.Bot.Send(msg)
}

// handleFlowCallback продвигает диалог по нажатой кнопке.
// Формат данных: "type:<id>" и "office:<typeID>:<officeID>".
func (h *Handler) handleFlowCallback(callback *tgbotapi.CallbackQuery, data string) {
	chatID := callback.Message.Chat.ID
	lang := h.language(callback.From)

	parts := strings.Split(data, ":")
	switch parts[0] {
	case "type":
		if len(parts) != 2 {
			return
		}
		h.flowTypeSelected(chatID, parts[1], lang)
	case "office":
		if len(parts) != 3 {
			return
		}
		h.flowOfficeSelected(chatID, parts[1], parts[2], lang)
	default:
		logrus.WithField("data", data).Warn("Unknown flow callback")
	}
}

func (h *Handler) flowTypeSelected(chatID int64, typeID string, lang i18n.Language) {
	state := flow.NewState()
	state.Language = string(lang)
	state.Data.UserID = strconv.FormatInt(chatID, 10)
	state = h.controller.Start(state)

	state, err := h.controller.SelectType(state, typeID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to select absence type")
		h.client.Bot.Send(tgbotapi.NewMessage(chatID, "❌ "+err.Error()))
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(models.OfficeIDs())+1)
	for _, officeID := range models.OfficeIDs() {
		label := i18n.T("office."+officeID, lang)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "flow:office:"+typeID+":"+officeID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonURL(i18n.T("common.openForm", lang), h.webappURL(state)),
	))

	text := "🏢 " + i18n.T("absence.selectOffice", lang) + "\n" +
		i18n.T("absence.selectType", lang) + ": " + i18n.T("absence.types."+typeID, lang)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	h.client.Bot.Send(msg)
}

// flowOfficeSelected восстанавливает состояние из данных кнопки и ведет
// дальше: шаг duration или сразу dates, решает контроллер. Оставшиеся
// шаги проходят в веб-форме по ссылке с токеном.
func (h *Handler) flowOfficeSelected(chatID int64, typeID, officeID string, lang i18n.Language) {
	state := flow.NewState()
	state.Language = string(lang)
	state.Data.UserID = strconv.FormatInt(chatID, 10)
	state = h.controller.Start(state)

	state, err := h.controller.SelectType(state, typeID)
	if err != nil {
		h.client.Bot.Send(tgbotapi.NewMessage(chatID, "❌ "+err.Error()))
		return
	}

	state, err = h.controller.SelectOffice(state, officeID)
	if err != nil {
		h.client.Bot.Send(tgbotapi.NewMessage(chatID, "❌ "+err.Error()))
		return
	}

	text := "📅 " + i18n.T("absence.selectDates", lang) + "\n\n" +
		i18n.T("common.openForm", lang)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(i18n.T("common.next", lang), h.webappURL(state)),
		),
	)
	h.client.Bot.Send(msg)
}

// listMyRequests показывает заявки пользователя (userId = chat id).
func (h *Handler) listMyRequests(message *tgbotapi.Message) {
	userID := strconv.FormatInt(message.Chat.ID, 10)
	requests := h.absences.List(service.AbsenceFilters{UserID: userID})

	if len(requests) == 0 {
		h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID, "📭 You have no absence requests yet."))
		return
	}

	var b strings.Builder
	b.WriteString("📋 Your absence requests:\n")
	for _, req := range requests {
		b.WriteString(fmt.Sprintf("\n%s %s %s", statusEmoji(req.Status), req.Type, req.StartDate))
		if req.EndDate != "" {
			b.WriteString(" — " + req.EndDate)
		}
		b.WriteString(" (" + req.Status + ")\nid: " + req.ID + "\n")
	}

	h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID, b.String()))
}

// decideRequest - решение менеджера по заявке: /approve <id> или /deny <id>.
func (h *Handler) decideRequest(message *tgbotapi.Message, args string, approve bool) {
	id := strings.TrimSpace(args)
	if id == "" {
		h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID, "❌ Usage: /approve <id> or /deny <id>"))
		return
	}

	status := models.StatusApproved
	if !approve {
		status = models.StatusDenied
	}

	updated, err := h.absences.Update(id, service.UpdateAbsenceInput{Status: status})
	if err != nil {
		logrus.WithError(err).Error("Failed to update absence status")
		h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to update request: "+err.Error()))
		return
	}
	if updated == nil {
		h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID, "❌ Request not found: "+id))
		return
	}

	h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("%s Request %s is now %s", statusEmoji(updated.Status), updated.ID, updated.Status)))
}

// showHolidays показывает праздники офиса на текущий и следующие годы.
func (h *Handler) showHolidays(message *tgbotapi.Message, args string) {
	office := strings.TrimSpace(args)
	if office == "" {
		office = models.OfficeLjubljana
	}
	if models.GetOfficeConfig(office) == nil {
		h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID, "❌ Unknown office. Try: ljubljana, munich"))
		return
	}

	lang := string(h.language(message.From))

	var b strings.Builder
	b.WriteString("🎉 Holidays (" + office + "):\n")
	for _, holiday := range holidays.ForOffice(office) {
		name := holiday.Name[lang]
		if name == "" {
			name = holiday.Name["en"]
		}
		b.WriteString("\n" + holiday.Date + " — " + name)
	}

	h.client.Bot.Send(tgbotapi.NewMessage(message.Chat.ID, b.String()))
}

// webappURL собирает ссылку на веб-форму с токеном состояния -
// тот же контракт, что query-параметры веб-приложения.
func (h *Handler) webappURL(state flow.State) string {
	lang := state.Language
	if lang == "" {
		lang = string(i18n.LangEN)
	}
	return fmt.Sprintf("%s/?state=%s&lang=%s", h.config.AppURL, flow.Encode(state), lang)
}

func statusEmoji(status string) string {
	switch status {
	case models.StatusApproved:
		return "✅"
	case models.StatusDenied:
		return "⛔"
	case models.StatusCancelled:
		return "🚫"
	default:
		return "⏳"
	}
}
