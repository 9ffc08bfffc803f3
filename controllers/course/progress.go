package courseController

import (
	"math"

	"codequest/database"
	"codequest/middleware"
	courseModels "codequest/models/course"

	"github.com/gofiber/fiber/v2"
)

// moduleWithCompletion decorates a module with the caller's completion flag
type moduleWithCompletion struct {
	courseModels.Module
	IsCompleted bool `json:"is_completed"`
}

func roundedPercentage(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// GetCourseModules lists a course's modules in order with an is_completed
// flag for the authenticated user
func GetCourseModules(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	if err := database.Database.Db.
		Preload("Questions.Options").
		Where("course_id = ?", courseID).
		Order("order_index asc").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	var completions []courseModels.CompletedModule
	database.Database.Db.Where("user_id = ?", userID).Find(&completions)

	completed := make(map[uint]bool, len(completions))
	for _, record := range completions {
		completed[record.ModuleID] = true
	}

	result := make([]moduleWithCompletion, len(modules))
	for i, module := range modules {
		result[i] = moduleWithCompletion{Module: module, IsCompleted: completed[module.ID]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", result)
}

// GetCourseProgress returns the caller's completion counts for one course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var totalModules int64
	database.Database.Db.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Count(&totalModules)

	var completedModules int64
	database.Database.Db.Model(&courseModels.CompletedModule{}).
		Joins("JOIN modules ON modules.id = completed_modules.module_id").
		Where("completed_modules.user_id = ? AND modules.course_id = ? AND modules.deleted_at IS NULL", userID, courseID).
		Count(&completedModules)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"total_modules":     totalModules,
		"completed_modules": completedModules,
		"percentage":        roundedPercentage(completedModules, totalModules),
	})
}

// GetUserProgress aggregates the caller's progress across every course.
// A course counts as completed only when it has at least one module and all
// of them are completed; module-less courses never count.
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Preload("Modules").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var completions []courseModels.CompletedModule
	database.Database.Db.Where("user_id = ?", userID).Find(&completions)

	completed := make(map[uint]bool, len(completions))
	for _, record := range completions {
		completed[record.ModuleID] = true
	}

	var totalModules, completedModules, completedCourses int64
	for _, course := range courses {
		totalModules += int64(len(course.Modules))

		courseDone := len(course.Modules) > 0
		for _, module := range course.Modules {
			if completed[module.ID] {
				completedModules++
			} else {
				courseDone = false
			}
		}
		if courseDone {
			completedCourses++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"total_courses":     len(courses),
		"completed_courses": completedCourses,
		"total_modules":     totalModules,
		"completed_modules": completedModules,
		"percentage":        roundedPercentage(completedModules, totalModules),
	})
}
