package api

import (
	"github.com/gofiber/fiber/v2"

	"vacaybot/internal/models"
	"vacaybot/pkg/holidays"
	"vacaybot/pkg/response"
)

func (s *Server) listHolidays(c *fiber.Ctx) error {
	office := c.Params("office")
	if models.GetOfficeConfig(office) == nil {
		return response.NotFound(c, "Unknown office")
	}
	return response.Success(c, holidays.ForOffice(office))
}
