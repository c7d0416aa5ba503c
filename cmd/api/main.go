package main

import (
	_ "mudafacil/docs"
	"mudafacil/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MudaFácil Estimates API
// @version         1.0
// @description     Moving-service estimate API (pricing + submission + deposits) backed by DynamoDB.

// @contact.name   API Support
// @contact.email  suporte@mudafacil.com.br

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
