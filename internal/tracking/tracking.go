// Package tracking generates the per-enrollment codes and links used to
// attribute clicks to a promoter.
package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// CodeLength is the number of hex characters in a tracking code.
const CodeLength = 12

// NewCode returns a cryptographically random hex tracking code of
// CodeLength characters. Uniqueness is enforced by the database's unique
// constraint on the tracking code column, not by checking here.
func NewCode() string {
	buf := make([]byte, (CodeLength+1)/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)[:CodeLength]
}

// Link builds the public tracking URL for a code.
func Link(baseURL, code string) string {
	return fmt.Sprintf("%s/track/%s", strings.TrimRight(baseURL, "/"), code)
}
