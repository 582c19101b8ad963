package models

import "strings"

// The previous web client had no benefits column and tucked benefits into the
// notes field as a "Benefícios: ..." paragraph separated by blank lines.
// Benefits is a real column now, but rows written by that client still exist,
// so reads decode the old form and EncodeLegacyNotes can reproduce it.

const benefitsPrefix = "Benefícios: "

// DecodeLegacyNotes splits a legacy notes value into (benefits, notes).
// Notes without the benefits paragraph come back unchanged.
func DecodeLegacyNotes(notes string) (string, string) {
	if !strings.Contains(notes, "Benefícios:") {
		return "", notes
	}
	parts := strings.Split(notes, "\n\n")
	benefits := ""
	rest := make([]string, 0, len(parts))
	for _, part := range parts {
		if benefits == "" && strings.HasPrefix(part, "Benefícios:") {
			benefits = strings.TrimPrefix(part, benefitsPrefix)
			benefits = strings.TrimPrefix(benefits, "Benefícios:")
			benefits = strings.TrimSpace(benefits)
			continue
		}
		rest = append(rest, part)
	}
	return benefits, strings.Join(rest, "\n\n")
}

// EncodeLegacyNotes renders benefits and notes in the old single-field form.
func EncodeLegacyNotes(benefits, notes string) string {
	parts := make([]string, 0, 2)
	if benefits != "" {
		parts = append(parts, benefitsPrefix+benefits)
	}
	if notes != "" {
		parts = append(parts, notes)
	}
	return strings.Join(parts, "\n\n")
}
