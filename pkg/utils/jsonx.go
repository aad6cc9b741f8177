package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// CleanModelJSON strips markdown code fences that models wrap around JSON
// despite being told not to.
func CleanModelJSON(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// RepairTrailingBrace appends a single closing brace when the payload does
// not already end with one. It only fixes trailing truncation; anything cut
// off mid-key stays broken and is left for the parser to reject.
func RepairTrailingBrace(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasSuffix(trimmed, "}") {
		return trimmed
	}
	return trimmed + "}"
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTripID returns a short unique identifier: the unix-millisecond
// timestamp in base 36 plus a 6-character random base-36 suffix,
// upper-cased. Not cryptographic; collision odds are negligible at this
// request volume.
func NewTripID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return strings.ToUpper(ts + string(suffix))
}
