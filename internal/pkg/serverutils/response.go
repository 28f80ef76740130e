package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Message: message,
		Data:    data,
	}
}

// ErrorHandlerMiddleware converts errors escaping controllers into a uniform
// JSON envelope instead of fiber's default text body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}
		if _, ok := err.(ValidationError); ok {
			code = fiber.StatusBadRequest
		}

		return ctx.Status(code).JSON(Response{Message: err.Error()})
	}
}
