package tracking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]{12}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewCode()
		require.Regexp(t, hexRe, code)
		if _, dup := seen[code]; dup {
			t.Fatalf("duplicate code generated: %s", code)
		}
		seen[code] = struct{}{}
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "https://viralink.app/track/abc123def456",
		Link("https://viralink.app", "abc123def456"))
	// trailing slash on the base URL must not double up
	assert.Equal(t, "https://viralink.app/track/abc123def456",
		Link("https://viralink.app/", "abc123def456"))
}
