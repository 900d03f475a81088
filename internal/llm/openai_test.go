package llm

import (
	"encoding/json"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A temperature of exactly 0 must still reach the wire: go-openai tags the
// field omitempty, and the API defaults a missing temperature to 1.0.
func TestZeroTemperatureSurvivesMarshal(t *testing.T) {
	body, err := json.Marshal(openai.ChatCompletionRequest{
		Model:       "gpt-4o-mini",
		Temperature: effectiveTemperature(0),
	})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"temperature"`)

	// The raw zero value is what the library silently drops.
	body, err = json.Marshal(openai.ChatCompletionRequest{
		Model:       "gpt-4o-mini",
		Temperature: 0,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"temperature"`)
}

func TestEffectiveTemperaturePassthrough(t *testing.T) {
	assert.Equal(t, float32(0.7), effectiveTemperature(0.7))
	assert.Equal(t, float32(1), effectiveTemperature(1))
	assert.NotZero(t, effectiveTemperature(0))
}

func TestHTTPClientTimeout(t *testing.T) {
	assert.Equal(t, httpTimeout, newHTTPClient().Timeout)
}
