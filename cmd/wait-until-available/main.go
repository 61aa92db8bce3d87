package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/asharma/money-reminders/internal/config"
)

// main blocks until the reminder service answers its list endpoint. Useful
// in scripts that need the service up before seeding or testing.
func main() {
	cfg := config.Load()
	url := "http://localhost:" + cfg.Port + "/api/reminders"
	waited := 0
	for {
		res, err := http.Get(url)
		if err == nil && res.StatusCode == http.StatusOK {
			fmt.Println("service is available")
			break
		}
		if err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("unexpected status:", res.Status)
		}
		waited += 5
		fmt.Printf("waited %d seconds\n", waited)
		time.Sleep(5 * time.Second)
	}
}
