package languageController

import (
	"codequest/database"
	"codequest/middleware"
	"codequest/models"

	"github.com/gofiber/fiber/v2"
)

// LanguagePayload is the validated create/update request body
type LanguagePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Image       string `json:"image"`
}

// GetAllLanguages lists every programming language
func GetAllLanguages(c *fiber.Ctx) error {
	var languages []models.Language
	if err := database.Database.Db.Order("name asc").Find(&languages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch languages!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Languages fetched successfully!", languages)
}

// CreateLanguage adds a language (admin only)
func CreateLanguage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLanguage").(*LanguagePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	language := models.Language{
		Name:        reqData.Name,
		Description: reqData.Description,
		Icon:        reqData.Icon,
		Color:       reqData.Color,
		Image:       reqData.Image,
	}

	if err := database.Database.Db.Create(&language).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create language!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Language created successfully!", language)
}

// UpdateLanguage updates the provided fields of a language (admin only)
func UpdateLanguage(c *fiber.Ctx) error {
	languageID, err := c.ParamsInt("id")
	if err != nil || languageID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid language id!", nil)
	}

	var language models.Language
	if err := database.Database.Db.Where("id = ?", languageID).First(&language).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Language not found!", nil)
	}

	reqData, ok := c.Locals("validatedLanguage").(*LanguagePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		language.Name = reqData.Name
	}
	if reqData.Description != "" {
		language.Description = reqData.Description
	}
	if reqData.Icon != "" {
		language.Icon = reqData.Icon
	}
	if reqData.Color != "" {
		language.Color = reqData.Color
	}
	if reqData.Image != "" {
		language.Image = reqData.Image
	}

	if err := database.Database.Db.Save(&language).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update language!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Language updated successfully!", language)
}

// DeleteLanguage removes a language; owning courses keep running with a null
// language reference (admin only)
func DeleteLanguage(c *fiber.Ctx) error {
	languageID, err := c.ParamsInt("id")
	if err != nil || languageID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid language id!", nil)
	}

	var language models.Language
	if err := database.Database.Db.Where("id = ?", languageID).First(&language).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Language not found!", nil)
	}

	if err := database.Database.Db.Delete(&language).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete language!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Language deleted successfully!", nil)
}
