package quality

import (
	"regexp"
	"strings"
)

// Contact type codes as they appear in PNR remarks
const (
	TypeAP    = "AP"    // generic, valid for email and phone
	TypeAPE   = "APE"   // email
	TypeAPM   = "APM"   // phone
	TypeCTCE  = "CTCE"  // email
	TypeCTCEM = "CTCEM" // legacy combined, in neither valid set
	TypeCTCM  = "CTCM"  // phone
)

// Compiled once, read-only after init
var (
	carrierPrefixPattern  = regexp.MustCompile(`^[A-Z]+/[A-Z]\+`)
	languageSuffixPattern = regexp.MustCompile(`/[A-Z]+$`)
	usageMarkerPattern    = regexp.MustCompile(`-[A-Z]$`)

	emailFormatPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}$`)
	phoneFormatPattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,25}$`)
)

var phoneHints = []string{"-m", "-s", "tel", "phone", "mobile"}

var phoneSeparatorReplacer = strings.NewReplacer(
	" ", "", "\t", "", "+", "", "(", "", ")", "", ".", "", ",", "", "-", "",
)

var (
	emailValidTypes = map[string]bool{TypeAP: true, TypeAPE: true, TypeCTCE: true}
	phoneValidTypes = map[string]bool{TypeAP: true, TypeAPM: true, TypeCTCM: true}
)

// Classification is the verdict for a single contact line.
type Classification struct {
	IsEmail         bool
	IsPhone         bool
	IsValidEmail    bool
	IsValidPhone    bool
	IsWronglyPlaced bool
}

// Classify evaluates one raw contact detail against its declared type.
// Pure: no state, no errors; unknown types simply fall outside both
// valid-type sets.
func Classify(contactType, contactDetail string) Classification {
	detail := strings.TrimSpace(contactDetail)
	if detail == "" {
		return Classification{}
	}

	c := Classification{
		IsEmail: isEmailShape(detail),
		IsPhone: isPhoneShape(detail),
	}

	if c.IsEmail && emailValidTypes[contactType] {
		normalized := strings.ReplaceAll(normalize(detail), "//", "@")
		c.IsValidEmail = emailFormatPattern.MatchString(normalized)
	}

	if c.IsPhone && phoneValidTypes[contactType] {
		normalized := strings.TrimSpace(normalize(detail))
		normalized = usageMarkerPattern.ReplaceAllString(normalized, "")
		normalized = strings.TrimSpace(normalized)
		c.IsValidPhone = phoneFormatPattern.MatchString(normalized)
	}

	c.IsWronglyPlaced = (c.IsEmail && !emailValidTypes[contactType]) ||
		(c.IsPhone && !phoneValidTypes[contactType])

	return c
}

// normalize strips the airline decoration markers: a leading carrier/channel
// prefix such as "KQ/M+", a trailing language suffix such as "/EN", and a
// trailing usage marker such as "-M".
func normalize(detail string) string {
	s := carrierPrefixPattern.ReplaceAllString(detail, "")
	s = languageSuffixPattern.ReplaceAllString(s, "")
	s = usageMarkerPattern.ReplaceAllString(s, "")
	return s
}

// isEmailShape detects email-looking strings on the raw detail. "//" is an
// alternate "@" encoding used by some delivery systems.
func isEmailShape(detail string) bool {
	if !strings.Contains(detail, ".") {
		return false
	}
	return strings.Contains(detail, "@") || strings.Contains(detail, "//")
}

// isPhoneShape detects phone-looking strings on the raw detail, either via
// literal hint substrings or digit density after separator stripping.
func isPhoneShape(detail string) bool {
	lower := strings.ToLower(detail)
	for _, hint := range phoneHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}

	stripped := phoneSeparatorReplacer.Replace(normalize(detail))
	if stripped == "" {
		return false
	}

	digits, total := 0, 0
	for _, r := range stripped {
		total++
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && float64(digits) >= 0.7*float64(total)
}
