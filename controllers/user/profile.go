package userController

import (
	"path/filepath"

	"codequest/database"
	"codequest/middleware"
	"codequest/models"
	"codequest/utils"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's profile including level and XP
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.Avatar,
		"level":  user.Level,
		"xp":     user.XP,
		"role":   user.Role,
	})
}

// UploadAvatar stores a new profile image for the authenticated user
func UploadAvatar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Avatar file is required!", nil)
	}

	switch filepath.Ext(file.Filename) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Unsupported image format!", nil)
	}

	savedPath, err := utils.SaveUploadedFile(file, "./public/avatars")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save avatar!", nil)
	}

	user.Avatar = utils.GetFileURL(savedPath)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Avatar updated successfully!", fiber.Map{
		"avatar": user.Avatar,
	})
}
