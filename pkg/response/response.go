package response

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseCreatedModel struct {
	Message string `json:"message"`
	Id      string `json:"id"`
}

type ResponseMessageModel struct {
	Message string `json:"message"`
}

type ResponseErrorModel struct {
	Error interface{} `json:"error"`
}

func ResponseOKWithData(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func ResponseOK(c *fiber.Ctx, message string) error {
	response := ResponseMessageModel{
		Message: message,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func ResponseCreated(c *fiber.Ctx, message string, id string) error {
	response := ResponseCreatedModel{
		Message: message,
		Id:      id,
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func ResponseError(c *fiber.Ctx, err interface{}, code int) error {
	response := ResponseErrorModel{
		Error: err,
	}

	return c.Status(code).JSON(response)
}
