package response

import "github.com/gofiber/fiber/v3"

// API responses follow the original wire format: success bodies are flat
// JSON objects built per endpoint, failures are {"message": "..."}.

const (
	MessageBadRequest          = "Bad request."
	MessageUnauthorized        = "Unauthorized."
	MessageForbidden           = "Forbidden."
	MessageNotFound            = "Not found."
	MessageConflict            = "Conflict."
	MessageInternalServerError = "Internal server error."
)

type messageBody struct {
	Message string `json:"message"`
}

func JSON(c fiber.Ctx, status int, body any) error {
	return c.Status(normalizeStatus(status)).JSON(body)
}

func Message(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(messageBody{Message: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}
