package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeInvoker scripts one response or error per model name and records the
// order models were tried in.
type fakeInvoker struct {
	responses map[string]string
	errors    map[string]error
	calls     []string
}

func (f *fakeInvoker) Invoke(ctx context.Context, model string, prompt string) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.errors[model]; ok {
		return "", err
	}
	return f.responses[model], nil
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestEmbedConfigRequestsSimilarityVectors(t *testing.T) {
	cfg := embedConfig()
	assert.Equal(t, "SEMANTIC_SIMILARITY", string(cfg.TaskType))
}

func TestGeneratorUsesFirstModel(t *testing.T) {
	invoker := &fakeInvoker{responses: map[string]string{"m1": "hello"}}
	g := NewGenerator(invoker, []string{"m1", "m2"}, testLogger())

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, []string{"m1"}, invoker.calls)
}

func TestGeneratorFallsBackOnMissingModel(t *testing.T) {
	invoker := &fakeInvoker{
		responses: map[string]string{"m2": "from m2"},
		errors:    map[string]error{"m1": errors.New("googleapi: Error 404: model m1 not found")},
	}
	g := NewGenerator(invoker, []string{"m1", "m2"}, testLogger())

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "from m2", text)
	assert.Equal(t, []string{"m1", "m2"}, invoker.calls)
}

func TestGeneratorDoesNotMaskUnrelatedErrors(t *testing.T) {
	boom := errors.New("rate limit exceeded")
	invoker := &fakeInvoker{
		responses: map[string]string{"m2": "never reached"},
		errors:    map[string]error{"m1": boom},
	}
	g := NewGenerator(invoker, []string{"m1", "m2"}, testLogger())

	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, boom, err)
	assert.Equal(t, []string{"m1"}, invoker.calls, "fallback must not be attempted")
}

func TestGeneratorExhaustedListWrapsLastError(t *testing.T) {
	invoker := &fakeInvoker{errors: map[string]error{
		"m1": errors.New("404 not found"),
		"m2": errors.New("model m2 is not supported for generateContent"),
	}}
	g := NewGenerator(invoker, []string{"m1", "m2"}, testLogger())

	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.Contains(t, err.Error(), "is not supported")
}

func TestGeneratorEmptyResponse(t *testing.T) {
	invoker := &fakeInvoker{responses: map[string]string{"m1": "   \n"}}
	g := NewGenerator(invoker, []string{"m1"}, testLogger())

	_, err := g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyGeneration)
}

func TestGeneratorEmptyModelList(t *testing.T) {
	g := NewGenerator(&fakeInvoker{}, nil, testLogger())
	_, err := g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}
