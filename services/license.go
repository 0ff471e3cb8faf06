package services

import "regexp"

var (
	// Structured codes like BUS-MAG-42KDF or BUR-BEL-DW8VZ
	licenseCodeRegex = regexp.MustCompile(`\b[A-Z]{3}-[A-Z]{3}-[A-Z0-9]{4,6}\b`)
	// Bare registration numbers like 1333701
	licenseDigitsRegex = regexp.MustCompile(`\b\d{6,8}\b`)
)

// ExtractLicense scans page text for a regulatory license code. The
// structured pattern is checked first because it is more specific than a
// bare digit run; the first match in document order wins. Returns "" when
// neither pattern is present. No semantic validation is attempted.
func ExtractLicense(text string) string {
	if m := licenseCodeRegex.FindString(text); m != "" {
		return m
	}
	if m := licenseDigitsRegex.FindString(text); m != "" {
		return m
	}
	return ""
}
