// file: main.go
package main

import (
	"log"
	"os"

	"hatch/database"
	"hatch/metrics"
	"hatch/routes"
	"hatch/services"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	database.Connect()
	database.MigrateTables()
	database.InitMongo()
	database.InitRedis()

	metrics.Register()
	services.StartNotifier()

	r := routes.SetupRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":5000"
	}
	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
