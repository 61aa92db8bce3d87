package main

import (
	"log"

	"github.com/asharma/money-reminders/internal/config"
	"github.com/asharma/money-reminders/internal/service"
	"github.com/asharma/money-reminders/internal/store"
)

// Usage example on the command line:
// > PORT=8080 DBHOST=localhost DBUSER=asharma DBPWD=secret GIN_MODE=release GIN_LOGGING=off go run main.go
func main() {
	cfg := config.Load()
	sqlDB := store.CreateDatabase(cfg.DSN())
	store.Setup(sqlDB)
	router := service.SetupHttpRouter(cfg.CORSOrigins)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
