package api

import (
	"github.com/gofiber/fiber/v2"

	"vacaybot/pkg/response"
)

type updateTeamsRequest struct {
	Teams []string `json:"teams"`
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	return response.Success(c, s.users.List())
}

// updateUserTeams заменяет набор команд целиком, не дельтой.
func (s *Server) updateUserTeams(c *fiber.Ctx) error {
	var req updateTeamsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	user, err := s.users.UpdateTeams(c.Params("id"), req.Teams)
	if err != nil {
		s.logger.WithError(err).Error("Failed to update user teams")
		return response.InternalServerError(c, "Failed to update teams")
	}
	if user == nil {
		return response.NotFound(c, "User not found")
	}

	return response.Success(c, user)
}
