// Package lang holds the bilingual UI strings of the application.
package lang

import "strings"

// Language selects the translation used for user-facing text.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// translations maps a message key to its text per language.
var translations = map[string]map[Language]string{
	"app.title": {
		English: "Money Reminders",
		Hindi:   "पैसे के रिमाइंडर",
	},
	"stats.total_pending": {
		English: "Total Pending",
		Hindi:   "कुल बकाया",
	},
	"btn.add_reminder": {
		English: "Add Reminder",
		Hindi:   "रिमाइंडर जोड़ें",
	},
	"btn.edit": {
		English: "Edit",
		Hindi:   "संपादित करें",
	},
	"btn.delete": {
		English: "Delete",
		Hindi:   "हटाएं",
	},
	"btn.save": {
		English: "Save Reminder",
		Hindi:   "रिमाइंडर सहेजें",
	},
	"btn.cancel": {
		English: "Cancel",
		Hindi:   "रद्द करें",
	},
	"label.name": {
		English: "Person Name",
		Hindi:   "व्यक्ति का नाम",
	},
	"label.phone": {
		English: "Phone Number",
		Hindi:   "फ़ोन नंबर",
	},
	"label.amount": {
		English: "Amount",
		Hindi:   "रकम",
	},
	"label.due_date": {
		English: "Due Date",
		Hindi:   "नियत तारीख",
	},
	"status.paid": {
		English: "Paid",
		Hindi:   "भुगतान किया",
	},
	"status.unpaid": {
		English: "Unpaid",
		Hindi:   "बकाया",
	},
	"msg.whatsapp_template": {
		English: "Hi {name}, friendly reminder for payment of {amount} due on {date}.",
		Hindi:   "नमस्ते {name}, {amount} का भुगतान {date} तक बाकी है।",
	},
	"empty.title": {
		English: "No reminders yet",
		Hindi:   "अभी कोई रिमाइंडर नहीं",
	},
	"empty.subtitle": {
		English: "Add your first payment reminder to get started",
		Hindi:   "शुरू करने के लिए अपना पहला भुगतान रिमाइंडर जोड़ें",
	},
}

// T returns the translation of the given key with every {param} placeholder
// replaced. An unknown key is returned as-is so that a missing translation
// shows up in the UI instead of vanishing.
func T(language Language, key string, params map[string]string) string {
	text, ok := translations[key][language]
	if !ok {
		return key
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// Parse maps a language code to a Language, falling back to English.
func Parse(code string) Language {
	if Language(code) == Hindi {
		return Hindi
	}
	return English
}
