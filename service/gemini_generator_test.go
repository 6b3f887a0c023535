package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiGeneratorRequiresKeys(t *testing.T) {
	_, err := NewGeminiGenerator(nil, "gemini-1.5-flash")
	assert.Error(t, err)
}

func TestGeminiKeyRotationCycles(t *testing.T) {
	g, err := NewGeminiGenerator([]string{"key-a", "key-b"}, "gemini-1.5-flash")
	require.NoError(t, err)

	require.NoError(t, g.rotateAPIKey())
	assert.Equal(t, 1, g.currentKey)
	require.NoError(t, g.rotateAPIKey())
	assert.Equal(t, 0, g.currentKey)
}

func TestGeminiModelSnapshotDuringRotation(t *testing.T) {
	g, err := NewGeminiGenerator([]string{"key-a", "key-b"}, "gemini-1.5-flash")
	require.NoError(t, err)

	// Readers snapshot the model while rotations replace it; under the
	// race detector this fails if either side skips the mutex.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NotNil(t, g.generativeModel())
			}
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, g.rotateAPIKey())
	}
	wg.Wait()
}
