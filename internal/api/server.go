package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vacaybot/internal/service"
)

// Server - тонкий HTTP-фасад над доменными сервисами. Бизнес-логики
// здесь нет: разбор запроса, вызов сервиса, единый конверт ответа.
type Server struct {
	app    *fiber.App
	logger *logrus.Logger

	absences *service.AbsenceService
	users    *service.UserService
	roles    *service.RoleService
}

func NewServer(
	absences *service.AbsenceService,
	users *service.UserService,
	roles *service.RoleService,
	logger *logrus.Logger,
) *Server {
	s := &Server{
		app:      fiber.New(fiber.Config{DisableStartupMessage: true}),
		logger:   logger,
		absences: absences,
		users:    users,
		roles:    roles,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Post("/absences", s.createAbsence)
	api.Get("/absences", s.listAbsences)
	api.Get("/absences/:id", s.getAbsence)
	api.Patch("/absences/:id", s.updateAbsence)
	api.Delete("/absences/:id", s.deleteAbsence)

	// Готовые срезы поверх того же списка заявок.
	api.Get("/outOfOffice/department/:department", s.listByDepartment)
	api.Get("/outOfOffice/manager/:managerEmail", s.listByManager)
	api.Get("/outOfOffice/user/:email", s.listByUser)

	api.Get("/users", s.listUsers)
	api.Patch("/users/:id/teams", s.updateUserTeams)

	api.Post("/roles", s.createRole)
	api.Get("/roles", s.listRoles)
	api.Put("/roles/rename", s.renameRole)
	api.Delete("/roles/:id", s.deleteRole)
	api.Get("/roles/:name/usage", s.roleUsage)

	api.Get("/holidays/:office", s.listHolidays)
}

// App отдает fiber-приложение (нужно тестам).
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen запускает HTTP-сервер.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown останавливает HTTP-сервер.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
