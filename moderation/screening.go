package moderation

import (
	"regexp"
	"strings"
	"unicode"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ScreenResult is an analysis, not a verdict: the caller decides whether to
// block, warn or persist.
type ScreenResult struct {
	IsAllowed bool     `json:"isAllowed"`
	Issues    []string `json:"issues"`
	Severity  Severity `json:"severity"`
}

const (
	issueBannedWord    = "banned_word"
	issuePhoneNumber   = "phone_number"
	issueEmailAddress  = "email_address"
	issueURL           = "url"
	issueRepeatedChars = "repeated_characters"
	issueExcessiveCaps = "excessive_caps"
)

// Issue messages per language. The lang hint only selects which string is
// returned, never which rules run.
var issueMessages = map[string]map[string]string{
	issueBannedWord: {
		"en": "Text contains prohibited language",
		"ar": "النص يحتوي على ألفاظ محظورة",
	},
	issuePhoneNumber: {
		"en": "Text appears to contain a phone number",
		"ar": "يبدو أن النص يحتوي على رقم هاتف",
	},
	issueEmailAddress: {
		"en": "Text appears to contain an email address",
		"ar": "يبدو أن النص يحتوي على بريد إلكتروني",
	},
	issueURL: {
		"en": "Text contains a link",
		"ar": "النص يحتوي على رابط",
	},
	issueRepeatedChars: {
		"en": "Text contains excessive repeated characters",
		"ar": "النص يحتوي على أحرف مكررة بشكل مفرط",
	},
	issueExcessiveCaps: {
		"en": "Text is written mostly in capital letters",
		"ar": "النص مكتوب بأحرف كبيرة بشكل مفرط",
	},
}

var (
	phonePattern = regexp.MustCompile(`(?:\d[ -]?){9,}`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	urlPattern   = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)
)

const (
	repeatedRunLength = 5
	capsMinLetters    = 15
	capsRatio         = 0.7
)

// Screen classifies a block of user-submitted text. It is a pure function:
// deterministic, side-effect free, and it never fails — an empty or clean
// text simply comes back allowed/low.
//
// Severity only ever escalates within a pass. Any vocabulary hit forces
// high and blocks regardless of what the pattern checks found.
func Screen(text, lang string) ScreenResult {
	result := ScreenResult{
		IsAllowed: true,
		Issues:    []string{},
		Severity:  SeverityLow,
	}

	if text == "" {
		return result
	}

	lower := strings.ToLower(text)

	vocabularyHit := false
	for _, list := range [][]string{englishWordlist, arabicWordlist} {
		for _, word := range list {
			if strings.Contains(lower, word) {
				vocabularyHit = true
				break
			}
		}
		if vocabularyHit {
			break
		}
	}
	if vocabularyHit {
		result.Issues = append(result.Issues, message(issueBannedWord, lang))
		result.Severity = SeverityHigh
		result.IsAllowed = false
	}

	if phonePattern.MatchString(text) {
		result.Issues = append(result.Issues, message(issuePhoneNumber, lang))
		escalate(&result, SeverityMedium)
	}
	if emailPattern.MatchString(text) {
		result.Issues = append(result.Issues, message(issueEmailAddress, lang))
		escalate(&result, SeverityMedium)
	}
	if urlPattern.MatchString(text) {
		result.Issues = append(result.Issues, message(issueURL, lang))
		escalate(&result, SeverityMedium)
	}
	if hasRepeatedRun(text, repeatedRunLength) {
		result.Issues = append(result.Issues, message(issueRepeatedChars, lang))
		escalate(&result, SeverityMedium)
	}
	if hasExcessiveCaps(text) {
		result.Issues = append(result.Issues, message(issueExcessiveCaps, lang))
		escalate(&result, SeverityMedium)
	}

	return result
}

func message(key, lang string) string {
	if lang == "ar" {
		return issueMessages[key]["ar"]
	}
	return issueMessages[key]["en"]
}

// escalate raises severity but never downgrades it.
func escalate(r *ScreenResult, s Severity) {
	if r.Severity == SeverityHigh {
		return
	}
	if s == SeverityMedium && r.Severity == SeverityLow {
		r.Severity = SeverityMedium
	}
}

// hasRepeatedRun reports whether the text contains a run of n or more
// identical characters. RE2 has no backreferences, so this is a plain scan.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// hasExcessiveCaps checks the uppercase ratio over cased letters only, so
// Arabic text (which has no case) never trips it.
func hasExcessiveCaps(text string) bool {
	letters, uppers := 0, 0
	for _, r := range text {
		if unicode.IsUpper(r) || unicode.IsLower(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters < capsMinLetters {
		return false
	}
	return float64(uppers)/float64(letters) > capsRatio
}
