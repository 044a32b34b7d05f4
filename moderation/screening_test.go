package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_CleanText(t *testing.T) {
	result := Screen("What are the admission requirements for computer science?", "en")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityLow, result.Severity)
	assert.Empty(t, result.Issues)
}

func TestScreen_EmptyText(t *testing.T) {
	result := Screen("", "en")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityLow, result.Severity)
	assert.NotNil(t, result.Issues)
	assert.Empty(t, result.Issues)
}

func TestScreen_EmailAndRepeatedChars(t *testing.T) {
	result := Screen("Contact me at student@example.com !!!!!", "en")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Contains(t, result.Issues, "Text appears to contain an email address")
	assert.Contains(t, result.Issues, "Text contains excessive repeated characters")
}

func TestScreen_BannedWordBlocks(t *testing.T) {
	result := Screen("Contact me at student@example.com !!!!! this is a scam", "en")

	assert.False(t, result.IsAllowed)
	assert.Equal(t, SeverityHigh, result.Severity)
	assert.Contains(t, result.Issues, "Text contains prohibited language")
	// Pattern findings are still reported alongside the vocabulary hit.
	assert.Contains(t, result.Issues, "Text appears to contain an email address")
}

func TestScreen_BannedWordCaseInsensitive(t *testing.T) {
	result := Screen("This is a SCAM", "en")

	assert.False(t, result.IsAllowed)
	assert.Equal(t, SeverityHigh, result.Severity)
}

func TestScreen_ArabicWordlistRunsWithEnglishHint(t *testing.T) {
	// The language hint picks the message language, never the rules.
	result := Screen("هذا نصب واحتيال", "en")

	assert.False(t, result.IsAllowed)
	assert.Equal(t, SeverityHigh, result.Severity)
	assert.Contains(t, result.Issues, "Text contains prohibited language")
}

func TestScreen_ArabicMessages(t *testing.T) {
	result := Screen("this is a scam", "ar")

	assert.False(t, result.IsAllowed)
	assert.Contains(t, result.Issues, "النص يحتوي على ألفاظ محظورة")
}

func TestScreen_PhoneNumber(t *testing.T) {
	result := Screen("Call me on 05 12 34 56 78 9", "en")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Contains(t, result.Issues, "Text appears to contain a phone number")
}

func TestScreen_URL(t *testing.T) {
	result := Screen("Check https://example.com/apply for details", "en")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Contains(t, result.Issues, "Text contains a link")
}

func TestScreen_ExcessiveCaps(t *testing.T) {
	result := Screen("THIS UNIVERSITY IS THE ABSOLUTE BEST ONE", "en")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityMedium, result.Severity)
	assert.Contains(t, result.Issues, "Text is written mostly in capital letters")
}

func TestScreen_ShortCapsTextNotFlagged(t *testing.T) {
	result := Screen("WOW NICE", "en")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityLow, result.Severity)
}

func TestScreen_ArabicTextNeverTripsCaps(t *testing.T) {
	result := Screen(strings.Repeat("ما هي شروط القبول في الجامعة ", 3), "ar")

	assert.True(t, result.IsAllowed)
	assert.Equal(t, SeverityLow, result.Severity)
}

func TestScreen_Deterministic(t *testing.T) {
	text := "Contact me at student@example.com !!!!!"

	first := Screen(text, "en")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Screen(text, "en"))
	}
}

func TestHasRepeatedRun(t *testing.T) {
	assert.True(t, hasRepeatedRun("hellooooo", 5))
	assert.False(t, hasRepeatedRun("helloooo", 5))
	assert.True(t, hasRepeatedRun("ههههه", 5))
	assert.False(t, hasRepeatedRun("", 5))
}
