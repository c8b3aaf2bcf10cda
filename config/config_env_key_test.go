package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"rateLimit": map[string]any{
			"window": "1m",
		},
		"signature": map[string]any{
			"validity": "5m",
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{
			name:     "aligns camelCase segments with existing YAML keys",
			rawKey:   "POSTGRES_SSLMODE",
			expected: "postgres.sslMode",
		},
		{
			name:     "matches top-level camelCase section",
			rawKey:   "RATELIMIT_WINDOW",
			expected: "rateLimit.window",
		},
		{
			name:     "falls back to lowercase for unknown keys",
			rawKey:   "SIGNATURE_SECRET",
			expected: "signature.secret",
		},
		{
			name:     "unknown section stays lowercase",
			rawKey:   "UNKNOWN_SECTION_VALUE",
			expected: "unknown.section.value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "ratelimit", normalizeToken("rate-limit"))
	assert.Equal(t, "dedupwindow", normalizeToken("dedupWindow"))
}
