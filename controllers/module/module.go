package moduleController

import (
	"codequest/database"
	"codequest/middleware"
	courseModels "codequest/models/course"

	"github.com/gofiber/fiber/v2"
)

// ModulePayload is the validated create/update request body
type ModulePayload struct {
	CourseID    uint   `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	OrderIndex  *int   `json:"order_index"`
	Duration    string `json:"duration"`
	XP          *int   `json:"xp"`
}

// GetAllModules lists every module with course and quiz content
func GetAllModules(c *fiber.Ctx) error {
	var modules []courseModels.Module
	if err := database.Database.Db.
		Preload("Questions.Options").
		Order("course_id asc, order_index asc").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// GetModule returns a single module with its questions and options
func GetModule(c *fiber.Ctx) error {
	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Preload("Questions.Options").Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// CreateModule creates a module inside a course (admin only)
func CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*ModulePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	module := courseModels.Module{
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Content:     reqData.Content,
		Duration:    reqData.Duration,
	}
	if reqData.OrderIndex != nil {
		module.OrderIndex = *reqData.OrderIndex
	}
	if reqData.XP != nil {
		module.XP = *reqData.XP
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule updates the provided fields of a module (admin only)
func UpdateModule(c *fiber.Ctx) error {
	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*ModulePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CourseID != 0 {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		module.CourseID = reqData.CourseID
	}
	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.Content != "" {
		module.Content = reqData.Content
	}
	if reqData.Duration != "" {
		module.Duration = reqData.Duration
	}
	if reqData.OrderIndex != nil {
		module.OrderIndex = *reqData.OrderIndex
	}
	if reqData.XP != nil {
		module.XP = *reqData.XP
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	database.Database.Db.Preload("Questions.Options").First(&module, module.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule removes a module and cascades to its questions, options and
// completion records (admin only)
func DeleteModule(c *fiber.Ctx) error {
	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := database.Database.Db.Select("Questions").Delete(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
