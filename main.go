package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/Brandongr90/la-gruta-dashboard/auth"
	"github.com/Brandongr90/la-gruta-dashboard/config"
	"github.com/Brandongr90/la-gruta-dashboard/database"
	"github.com/Brandongr90/la-gruta-dashboard/handlers"
	"github.com/Brandongr90/la-gruta-dashboard/reports"
	"github.com/Brandongr90/la-gruta-dashboard/routes"
	"github.com/Brandongr90/la-gruta-dashboard/supabase"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}
	cfg := config.AppConfig

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
	}

	// Credential store is built once at startup; passwords are hashed here.
	store, err := auth.NewStore(cfg.Users, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Unable to build credential store: %v", err)
	}

	// Prefer the Supabase REST transport; fall back to a direct Postgres
	// connection when only DATABASE_URL is configured.
	var source reports.Source
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		source = supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
	} else {
		database.Connect(cfg.DatabaseURL)
		defer database.Close()
		source = database.NewVentasStore(database.GetDB())
	}

	handlers.Init(reports.NewService(source, loc), store)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
