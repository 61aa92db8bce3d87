package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTranslations checks that both languages resolve a plain key.
func TestTranslations(t *testing.T) {
	assert.Equal(t, "Money Reminders", T(English, "app.title", nil))
	assert.Equal(t, "पैसे के रिमाइंडर", T(Hindi, "app.title", nil))
}

// TestTemplateSubstitution checks that every placeholder of the WhatsApp
// template is replaced.
func TestTemplateSubstitution(t *testing.T) {
	params := map[string]string{
		"name":   "Rahul Sharma",
		"amount": "₹500",
		"date":   "02 Sep 2026",
	}
	assert.Equal(t,
		"Hi Rahul Sharma, friendly reminder for payment of ₹500 due on 02 Sep 2026.",
		T(English, "msg.whatsapp_template", params))
	assert.Equal(t,
		"नमस्ते Rahul Sharma, ₹500 का भुगतान 02 Sep 2026 तक बाकी है।",
		T(Hindi, "msg.whatsapp_template", params))
}

// TestUnknownKey expects the key itself instead of an empty string.
func TestUnknownKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T(English, "no.such.key", nil))
}

// TestParse falls back to English for anything but "hi".
func TestParse(t *testing.T) {
	assert.Equal(t, Hindi, Parse("hi"))
	assert.Equal(t, English, Parse("en"))
	assert.Equal(t, English, Parse("fr"))
	assert.Equal(t, English, Parse(""))
}
