package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/asharma/money-reminders/internal/client"
	"github.com/asharma/money-reminders/internal/lang"
	"github.com/asharma/money-reminders/internal/model"
	"github.com/asharma/money-reminders/internal/view"
	"github.com/asharma/money-reminders/internal/whatsapp"
)

const usage = `usage: client [-base URL] [-lang en|hi] <command> [args]

commands:
  list [query]                        show reminders, optionally filtered
  add <name> <phone> <amount> <due>   create a reminder, due as 2006-01-02
  paid <id>                           mark a reminder as paid
  unpaid <id>                         mark a reminder as unpaid
  delete <id>                         remove a reminder
  nudge <id>                          print the WhatsApp nudge link
`

// Usage examples on the command line:
// > go run main.go list
// > go run main.go add "Rahul Sharma" 9876543210 500 2026-09-02
// > go run main.go -lang hi nudge 3
func main() {
	base := flag.String("base", "http://localhost:8080", "base URL of the reminder service")
	langCode := flag.String("lang", "en", "language for messages, en or hi")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	c := client.New(*base)
	language := lang.Parse(*langCode)

	var err error
	switch args[0] {
	case "list":
		err = list(c, language, args[1:])
	case "add":
		err = add(c, args[1:])
	case "paid":
		err = setPaid(c, args[1:], true)
	case "unpaid":
		err = setPaid(c, args[1:], false)
	case "delete":
		err = remove(c, args[1:])
	case "nudge":
		err = nudge(c, language, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// list prints the filtered and sorted reminder list together with the
// pending totals.
func list(c *client.Client, language lang.Language, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	reminders, err := c.Reminders()
	if err != nil {
		return err
	}
	projected := view.Project(reminders, query)
	if len(projected) == 0 {
		fmt.Println(lang.T(language, "empty.title", nil))
		return nil
	}
	for _, r := range projected {
		status := "status.unpaid"
		if r.IsPaid {
			status = "status.paid"
		}
		fmt.Printf("%4d  %-24s %-14s %10s  %s  [%s]\n",
			r.Id, r.PersonName, r.PhoneNumber,
			view.FormatAmount(r.Amount), view.FormatDate(r.DueDate),
			lang.T(language, status, nil))
	}
	total, count := view.Pending(reminders)
	fmt.Printf("\n%s: %s (%d)\n",
		lang.T(language, "stats.total_pending", nil), view.FormatAmount(total), count)
	return nil
}

// add creates a reminder from the positional arguments.
func add(c *client.Client, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("add needs name, phone, amount and due date")
	}
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[2])
	}
	due, err := time.Parse("2006-01-02", args[3])
	if err != nil {
		return fmt.Errorf("invalid due date %q, want 2006-01-02", args[3])
	}
	created, err := c.Create(model.ReminderInput{
		PersonName:  &args[0],
		PhoneNumber: &args[1],
		Amount:      &amount,
		DueDate:     &due,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created reminder %d\n", created.Id)
	return nil
}

// setPaid toggles the isPaid flag of one reminder.
func setPaid(c *client.Client, args []string, paid bool) error {
	id, err := parseId(args)
	if err != nil {
		return err
	}
	updated, err := c.Update(id, model.ReminderInput{IsPaid: &paid})
	if err != nil {
		return err
	}
	fmt.Printf("reminder %d isPaid=%t\n", updated.Id, updated.IsPaid)
	return nil
}

// remove deletes one reminder.
func remove(c *client.Client, args []string) error {
	id, err := parseId(args)
	if err != nil {
		return err
	}
	if err := c.Delete(id); err != nil {
		return err
	}
	fmt.Printf("deleted reminder %d\n", id)
	return nil
}

// nudge prints the wa.me link for one reminder.
func nudge(c *client.Client, language lang.Language, args []string) error {
	id, err := parseId(args)
	if err != nil {
		return err
	}
	reminders, err := c.Reminders()
	if err != nil {
		return err
	}
	for _, r := range reminders {
		if r.Id == id {
			fmt.Println(whatsapp.NudgeURL(r, language))
			return nil
		}
	}
	return fmt.Errorf("no reminder with id %d", id)
}

func parseId(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one id argument")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
