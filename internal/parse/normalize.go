package parse

import "strings"

// fieldCutset covers the quoting and whitespace artifacts the raw documents
// leave on field edges.
const fieldCutset = "\" \t\r\n"

// Normalize strips leading and trailing quote and whitespace characters from
// a raw field. It is idempotent: normalizing an already-normalized value is
// a no-op. Interior characters, including embedded newlines reassembled by
// MultilineRows, are preserved.
func Normalize(field string) string {
	return strings.Trim(field, fieldCutset)
}

// Field returns the normalized field at index i, or the empty string when
// the row is too short. Absent input normalizes to empty, so downstream
// comparisons never see a raw artifact.
func Field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return Normalize(row[i])
}
