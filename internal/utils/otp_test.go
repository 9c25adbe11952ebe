package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	sixDigits := regexp.MustCompile(`^[0-9]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		assert.NoError(t, err, "Generation should not return an error")
		assert.True(t, sixDigits.MatchString(code), "Code %q should be exactly six digits", code)
		seen[code] = true
	}

	// 50 draws from a 900000-value space collapsing to very few distinct
	// values would indicate a broken generator
	assert.Greater(t, len(seen), 40, "Codes should be reasonably distinct")
}
