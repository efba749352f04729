package main

import (
	_ "plotsite/docs"
	"plotsite/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Plot Site API
// @version         1.0
// @description     Plot catalog, site-plan layouts, visitor selection and inquiries.

// @contact.name   API Support
// @contact.email  support@krishnammagari.dev

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
