// Package parse turns raw delimited-text documents into rows of string
// fields. It deliberately implements two very different paths: a naive
// line/comma split for the well-formed documents, and a quote-aware scanner
// for the US indirect-additives export, which embeds commas and even raw
// newlines inside double-quoted fields.
package parse

import "strings"

// Rows splits well-formed comma-delimited text into rows of raw fields.
// The first line is treated as a header and dropped; empty lines are
// skipped. Fields are split on every comma with no quote awareness, which
// is only safe for documents whose values never contain commas.
func Rows(text string) [][]string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	var rows [][]string
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}

// MultilineRows parses comma-delimited text whose quoted fields may contain
// commas and unescaped newlines. The first skipLines physical lines are
// metadata and dropped, the first completed logical record is the header and
// dropped.
//
// A logical record is complete when the accumulated text contains an even
// number of double quotes; an odd count means a quoted field is still open
// and the next physical line belongs to the same record.
func MultilineRows(text string, skipLines int) [][]string {
	lines := strings.Split(text, "\n")
	if skipLines > len(lines) {
		skipLines = len(lines)
	}
	lines = lines[skipLines:]

	var rows [][]string
	var carry string
	headerSeen := false

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			// Blank lines never contribute to a record or to quote parity.
			continue
		}

		if carry != "" {
			carry += "\n" + line
		} else {
			carry = line
		}

		if strings.Count(carry, `"`)%2 != 0 {
			continue
		}

		record := SplitRecord(carry)
		carry = ""

		if !headerSeen {
			headerSeen = true
			continue
		}
		rows = append(rows, record)
	}

	// A dangling unterminated record at EOF is malformed and dropped.
	return rows
}

// SplitRecord splits one logical record on commas, treating commas inside a
// matched pair of double quotes as field content. Quote characters are kept
// in place; Normalize strips them later.
func SplitRecord(record string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, r := range record {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			field.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields
}
