package handler

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"vacaybot/internal/config"
	"vacaybot/internal/flow"
	"vacaybot/internal/service"
	"vacaybot/pkg/i18n"
	"vacaybot/pkg/telegram"
)

// Handler - чатовый фронтенд той же формы заявки, что и веб.
// Прогресс диалога не хранится на сервере: каждая кнопка несет ссылку
// на веб-форму с закодированным токеном состояния.
type Handler struct {
	client     *telegram.Client
	controller *flow.Controller
	absences   *service.AbsenceService
	users      *service.UserService
	config     *config.Config
}

func NewHandler(
	client *telegram.Client,
	controller *flow.Controller,
	absences *service.AbsenceService,
	users *service.UserService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		client:     client,
		controller: controller,
		absences:   absences,
		users:      users,
		config:     cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		// Inline кнопки
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if !message.IsCommand() {
		return
	}

	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "vacation":
		h.startAbsenceFlow(message)
	case "requests":
		h.listMyRequests(message)
	case "approve":
		h.decideRequest(message, args, true)
	case "deny":
		h.decideRequest(message, args, false)
	case "holidays":
		h.showHolidays(message, args)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command, see /help")
		h.client.Bot.Send(msg)
	}
}

// handleCallbackQuery разбирает нажатия inline кнопок. Данные кнопки
// компактны ("flow:type:vacation"), полное состояние живет только в
// ссылке на веб-форму.
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Убираем клавиатуру под нажатой кнопкой
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.client.Bot.Send(editMsg)

	if strings.HasPrefix(data, "flow:") {
		h.handleFlowCallback(callback, strings.TrimPrefix(data, "flow:"))
		return
	}

	logrus.WithField("data", data).Warn("Unknown callback data")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	lang := h.language(message.From)
	text := "👋 " + i18n.T("absence.title", lang) + "\n\n" +
		"/vacation — " + i18n.T("absence.selectType", lang) + "\n" +
		"/requests — your absence requests\n" +
		"/help — all commands"

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	h.client.Bot.Send(msg)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📖 Commands:

/vacation — start a new absence request
/requests — list your requests
/approve <id> — approve a request (managers)
/deny <id> — deny a request (managers)
/holidays <office> — public holidays (ljubljana, munich)`

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	h.client.Bot.Send(msg)
}

// language определяет язык пользователя по локали Telegram.
func (h *Handler) language(user *tgbotapi.User) i18n.Language {
	if user == nil {
		return i18n.LangEN
	}
	return i18n.Detect(user.LanguageCode)
}
