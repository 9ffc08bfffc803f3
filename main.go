package main

import (
	"log"

	"codequest/config"
	"codequest/database"
	authRoutes "codequest/routers/authRoutes"
	courseRoutes "codequest/routers/courseRoutes"
	languageRoutes "codequest/routers/languageRoutes"
	moduleRoutes "codequest/routers/moduleRoutes"
	userRoutes "codequest/routers/userRoutes"
	"codequest/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve avatars and other static assets
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	moduleRoutes.SetupModuleRoutes(app)
	languageRoutes.SetupLanguageRoutes(app)

	if config.AppConfig.DigestCron {
		utils.InitializeDigestScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
