// Package ids generates and matches the opaque identifiers used for tasks,
// lists, groups, categories, and time presets.
package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"strings"
	"time"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

// Generate creates a lowercase base32 ID derived from input.
func Generate(input string, length int) string {
	if length <= 0 {
		return ""
	}
	hash := sha256.Sum256([]byte(input))
	encoded := strings.ToLower(base32.StdEncoding.EncodeToString(hash[:]))
	if length > len(encoded) {
		length = len(encoded)
	}
	return encoded[:length]
}

// GenerateWithTimestamp appends a timestamp to input before hashing, so two
// records created from the same seed at different instants get distinct IDs.
func GenerateWithTimestamp(input string, timestamp time.Time, length int) string {
	return Generate(input+timestamp.Format(time.RFC3339Nano), length)
}
