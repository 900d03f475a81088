package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type flakyProvider struct {
	calls    int
	failFor  int
	response string
}

func (f *flakyProvider) Generate(_ context.Context, _ Request) (string, error) {
	f.calls++
	if f.calls <= f.failFor {
		return "", errors.New("transient failure")
	}
	return f.response, nil
}

func (f *flakyProvider) Name() string { return "flaky" }

func TestRetrySucceedsAfterFailures(t *testing.T) {
	inner := &flakyProvider{failFor: 2, response: "SELECT 1"}
	p := WithRetry(inner, 2, zap.NewNop())

	text, err := p.Generate(context.Background(), Request{Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", text)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryGivesUp(t *testing.T) {
	inner := &flakyProvider{failFor: 10}
	p := WithRetry(inner, 2, zap.NewNop())

	_, err := p.Generate(context.Background(), Request{Prompt: "q"})
	require.Error(t, err)
	assert.Equal(t, 3, inner.calls, "one initial attempt plus two retries")
}

func TestRetryStopsOnCancel(t *testing.T) {
	inner := &flakyProvider{failFor: 10}
	p := WithRetry(inner, 5, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{Prompt: "q"})
	require.Error(t, err)
	assert.LessOrEqual(t, inner.calls, 1)
}

func TestNewProviderValidation(t *testing.T) {
	_, err := NewProvider(Config{Provider: "openai"})
	assert.Error(t, err, "missing API key must be rejected")

	_, err = NewProvider(Config{Provider: "cohere", APIKey: "k"})
	assert.Error(t, err, "unknown provider must be rejected")

	p, err := NewProvider(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	p, err = NewProvider(Config{Provider: "anthropic", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
}
