package response

import "github.com/gofiber/fiber/v2"

// Envelope - единый конверт всех ответов API.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success отправляет успешный ответ с данными.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// Created отправляет 201 с созданной записью.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// OK отправляет успешный ответ без данных.
func OK(c *fiber.Ctx) error {
	return c.JSON(Envelope{Success: true})
}

// Error отправляет ошибку с указанным статусом.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Envelope{Success: false, Error: message})
}

// BadRequest - 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// NotFound - 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict - 409.
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError - 500.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
