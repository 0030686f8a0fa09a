package api

import (
	"github.com/gofiber/fiber/v2"

	"vacaybot/internal/service"
	"vacaybot/pkg/response"
)

type createAbsenceRequest struct {
	UserID       string  `json:"userId"`
	UserEmail    string  `json:"userEmail"`
	Type         string  `json:"type"`
	Office       string  `json:"office"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Hours        float64 `json:"hours"`
	Days         float64 `json:"days"`
	Note         string  `json:"note"`
	ManagerEmail string  `json:"managerEmail"`
}

type updateAbsenceRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

func (s *Server) createAbsence(c *fiber.Ctx) error {
	var req createAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	absence, err := s.absences.Create(service.CreateAbsenceInput{
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		Type:         req.Type,
		Office:       req.Office,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Hours:        req.Hours,
		Days:         req.Days,
		Note:         req.Note,
		ManagerEmail: req.ManagerEmail,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to create absence")
		return response.InternalServerError(c, "Failed to create absence request")
	}

	return response.Created(c, absence)
}

func (s *Server) listAbsences(c *fiber.Ctx) error {
	filters := service.AbsenceFilters{
		UserID:       c.Query("userId"),
		UserEmail:    c.Query("userEmail"),
		Department:   c.Query("department"),
		ManagerEmail: c.Query("managerEmail"),
		Status:       c.Query("status"),
		StartDate:    c.Query("start_date"),
		EndDate:      c.Query("end_date"),
	}

	return response.Success(c, s.absences.List(filters))
}

func (s *Server) getAbsence(c *fiber.Ctx) error {
	absence := s.absences.Get(c.Params("id"))
	if absence == nil {
		return response.NotFound(c, "Absence not found")
	}
	return response.Success(c, absence)
}

func (s *Server) updateAbsence(c *fiber.Ctx) error {
	var req updateAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	absence, err := s.absences.Update(c.Params("id"), service.UpdateAbsenceInput{
		Status: req.Status,
		Note:   req.Note,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to update absence")
		return response.InternalServerError(c, "Failed to update absence")
	}
	if absence == nil {
		return response.NotFound(c, "Absence not found")
	}

	return response.Success(c, absence)
}

func (s *Server) deleteAbsence(c *fiber.Ctx) error {
	// Удаление - всегда мягкая отмена, запись остается в истории.
	ok, err := s.absences.Delete(c.Params("id"))
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete absence")
		return response.InternalServerError(c, "Failed to delete absence")
	}
	if !ok {
		return response.NotFound(c, "Absence not found")
	}

	return response.OK(c)
}

func (s *Server) listByDepartment(c *fiber.Ctx) error {
	return response.Success(c, s.absences.List(service.AbsenceFilters{
		Department: c.Params("department"),
	}))
}

func (s *Server) listByManager(c *fiber.Ctx) error {
	return response.Success(c, s.absences.List(service.AbsenceFilters{
		ManagerEmail: c.Params("managerEmail"),
	}))
}

func (s *Server) listByUser(c *fiber.Ctx) error {
	return response.Success(c, s.absences.List(service.AbsenceFilters{
		UserEmail: c.Params("email"),
	}))
}
