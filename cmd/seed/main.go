package main

import (
	"fmt"
	"log"
	"time"

	"github.com/asharma/money-reminders/internal/config"
	"github.com/asharma/money-reminders/internal/model"
	"github.com/asharma/money-reminders/internal/store"
)

// main enters initial sample data into the database. If the table already
// holds reminders then nothing is added.
//
// Usage example on the command line:
// > DBHOST=localhost DBUSER=asharma DBPWD=secret go run main.go
func main() {
	cfg := config.Load()
	sqlDB := store.CreateDatabase(cfg.DSN())
	store.Setup(sqlDB)

	existing, err := store.List()
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		fmt.Println("Database already has data, skipping seed.")
		return
	}

	now := time.Now()
	samples := []model.ReminderInput{
		reminderInput("Rahul Sharma", "9876543210", 500, now.AddDate(0, 0, 2), false),
		reminderInput("Amit Patel", "9123456789", 1200, now.AddDate(0, 0, -1), false),
		reminderInput("Sneha Gupta", "9988776655", 250, now.AddDate(0, 0, -5), true),
	}
	for _, in := range samples {
		if _, err := store.Create(in); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println("Seeded successfully!")
}

func reminderInput(name, phone string, amount int64, due time.Time, paid bool) model.ReminderInput {
	return model.ReminderInput{
		PersonName:  &name,
		PhoneNumber: &phone,
		Amount:      &amount,
		DueDate:     &due,
		IsPaid:      &paid,
	}
}
