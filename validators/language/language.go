package languageValidator

import (
	"strings"

	languageController "codequest/controllers/language"
	"codequest/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateLanguage validator middleware
func CreateLanguage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(languageController.LanguagePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Name is required!",
			})
		}

		c.Locals("validatedLanguage", reqData)
		return c.Next()
	}
}

// UpdateLanguage validator middleware; all fields optional
func UpdateLanguage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(languageController.LanguagePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedLanguage", reqData)
		return c.Next()
	}
}
