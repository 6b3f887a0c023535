package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatches(t *testing.T) {
	payload := map[string]interface{}{
		CHUNK_CLASS: []interface{}{
			map[string]interface{}{
				"content":    "light is radiation",
				"documentId": "doc-a",
				"_additional": map[string]interface{}{
					"distance": 0.25,
				},
			},
		},
	}

	matches := parseMatches(payload, 5)
	require.Len(t, matches, 1)
	assert.Equal(t, "light is radiation", matches[0].Text)
	assert.Equal(t, "doc-a", matches[0].DocumentID)
	assert.InDelta(t, 0.75, float64(matches[0].Score), 1e-6)
}

func TestParseMatchesMalformedPayload(t *testing.T) {
	assert.Empty(t, parseMatches(nil, 5))
	assert.Empty(t, parseMatches("garbage", 5))
	assert.Empty(t, parseMatches(map[string]interface{}{}, 5))
	assert.Empty(t, parseMatches(map[string]interface{}{CHUNK_CLASS: "not a list"}, 5))

	// Items missing content or of the wrong shape are skipped, not fatal.
	payload := map[string]interface{}{
		CHUNK_CLASS: []interface{}{
			"not an object",
			map[string]interface{}{"documentId": "doc-a"},
			map[string]interface{}{"content": 42},
			map[string]interface{}{"content": "kept", "documentId": "doc-a"},
		},
	}
	matches := parseMatches(payload, 5)
	require.Len(t, matches, 1)
	assert.Equal(t, "kept", matches[0].Text)
}
