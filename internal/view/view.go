// Package view derives the display projection of the reminder list. The
// projection is recomputed on every call and never persisted.
package view

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/asharma/money-reminders/internal/model"
)

// Project filters the reminders by a case-insensitive substring match on the
// person name or the phone number and sorts them for display: unpaid
// reminders first, then within each group ascending by due date, so the most
// urgent dues come on top. The input slice is not modified.
func Project(reminders []model.Reminder, query string) []model.Reminder {
	query = strings.ToLower(query)
	projected := make([]model.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if query == "" ||
			strings.Contains(strings.ToLower(r.PersonName), query) ||
			strings.Contains(r.PhoneNumber, query) {
			projected = append(projected, r)
		}
	}
	sort.SliceStable(projected, func(i, j int) bool {
		if projected[i].IsPaid != projected[j].IsPaid {
			return !projected[i].IsPaid
		}
		return projected[i].DueDate.Before(projected[j].DueDate)
	})
	return projected
}

// Pending sums up the unpaid reminders and returns the total outstanding
// amount together with the number of pending items.
func Pending(reminders []model.Reminder) (total int64, count int) {
	for _, r := range reminders {
		if !r.IsPaid {
			total += r.Amount
			count++
		}
	}
	return total, count
}

// FormatAmount renders a whole-rupee amount with the Indian grouping of
// digits: the last three digits form one group, every further group has two
// digits, e.g. ₹12,34,567.
func FormatAmount(amount int64) string {
	var builder strings.Builder
	if amount < 0 {
		builder.WriteString("-")
		amount = -amount
	}
	builder.WriteString("₹")
	builder.WriteString(groupIndian(amount))
	return builder.String()
}

// groupIndian inserts the Indian thousands separators into a non-negative
// number.
func groupIndian(amount int64) string {
	digits := []byte(strconv.FormatInt(amount, 10))
	if len(digits) <= 3 {
		return string(digits)
	}
	var groups []string
	head := digits[:len(digits)-3]
	groups = append(groups, string(digits[len(digits)-3:]))
	for len(head) > 2 {
		groups = append(groups, string(head[len(head)-2:]))
		head = head[:len(head)-2]
	}
	groups = append(groups, string(head))
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, ",")
}

// FormatDate renders a due date the way the reminder cards show it, for
// example "02 Sep 2026".
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}
