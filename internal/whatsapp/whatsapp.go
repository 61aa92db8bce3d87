// Package whatsapp builds the outbound wa.me deep link for nudging a person
// about a due payment. The link is opened by the user, no message is sent by
// this system itself.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/asharma/money-reminders/internal/lang"
	"github.com/asharma/money-reminders/internal/model"
	"github.com/asharma/money-reminders/internal/view"
)

// DigitsOnly strips everything but digits from a phone number. wa.me only
// accepts bare digits, no '+', spaces or dashes.
func DigitsOnly(phone string) string {
	var builder strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Message renders the nudge text for a reminder in the given language, with
// the person's name, the formatted amount and the formatted due date filled
// into the template.
func Message(r model.Reminder, language lang.Language) string {
	return lang.T(language, "msg.whatsapp_template", map[string]string{
		"name":   r.PersonName,
		"amount": view.FormatAmount(r.Amount),
		"date":   view.FormatDate(r.DueDate),
	})
}

// NudgeURL builds the https://wa.me link that opens a WhatsApp chat with the
// reminder's phone number and the nudge text prefilled.
func NudgeURL(r model.Reminder, language lang.Language) string {
	return "https://wa.me/" + DigitsOnly(r.PhoneNumber) +
		"?text=" + url.QueryEscape(Message(r, language))
}
