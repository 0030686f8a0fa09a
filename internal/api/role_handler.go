package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vacaybot/internal/service"
	"vacaybot/pkg/response"
)

type createRoleRequest struct {
	Name string `json:"name"`
}

type renameRoleRequest struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

type roleUsageResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (s *Server) createRole(c *fiber.Ctx) error {
	var req createRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	role, err := s.roles.Create(req.Name)
	if err != nil {
		var dup *service.DuplicateError
		if errors.As(err, &dup) {
			return response.Conflict(c, dup.Error())
		}
		s.logger.WithError(err).Error("Failed to create role")
		return response.InternalServerError(c, "Failed to create role")
	}

	return response.Created(c, role)
}

func (s *Server) listRoles(c *fiber.Ctx) error {
	return response.Success(c, s.roles.List())
}

func (s *Server) renameRole(c *fiber.Ctx) error {
	var req renameRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	role, err := s.roles.Rename(req.OldName, req.NewName)
	if err != nil {
		s.logger.WithError(err).Error("Failed to rename role")
		return response.InternalServerError(c, "Failed to rename role")
	}
	if role == nil {
		return response.NotFound(c, "Role not found")
	}

	return response.Success(c, role)
}

func (s *Server) deleteRole(c *fiber.Ctx) error {
	ok, err := s.roles.Delete(c.Params("id"))
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete role")
		return response.InternalServerError(c, "Failed to delete role")
	}
	if !ok {
		return response.NotFound(c, "Role not found")
	}

	return response.OK(c)
}

func (s *Server) roleUsage(c *fiber.Ctx) error {
	name := c.Params("name")
	return response.Success(c, roleUsageResponse{
		Name:  name,
		Count: s.roles.UsageCount(name),
	})
}
