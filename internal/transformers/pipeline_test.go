package transformers

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
)

// stubStage is a configurable transformer for pipeline tests.
type stubStage struct {
	name    string
	suffix  string
	changed bool
	err     error
	calls   int
}

func (s *stubStage) Name() string {
	return s.name
}

func (s *stubStage) Transform(_ context.Context, text string, _ float64, _ *rand.Rand) (driven.TransformOutput, error) {
	s.calls++
	if s.err != nil {
		return driven.TransformOutput{}, s.err
	}
	if !s.changed {
		return driven.TransformOutput{Text: text, Changed: false}, nil
	}
	return driven.TransformOutput{Text: text + s.suffix, Changed: true}, nil
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func allOptions() domain.TransformOptions {
	return domain.TransformOptions{Structure: true, Vocabulary: true, Noise: true}
}

func TestPipeline_RunsStagesInOrder(t *testing.T) {
	p := NewPipeline(
		&stubStage{name: domain.TransformStructure, suffix: " A", changed: true},
		&stubStage{name: domain.TransformVocabulary, suffix: " B", changed: true},
		&stubStage{name: domain.TransformNoise, suffix: " C", changed: true},
	)

	out, applied, err := p.Run(context.Background(), "텍스트", allOptions(), 1.0, testRand())

	require.NoError(t, err)
	assert.Equal(t, "텍스트 A B C", out)
	assert.Equal(t, []string{"structure", "vocabulary", "noise"}, applied)
}

func TestPipeline_SkipsDisabledStages(t *testing.T) {
	vocab := &stubStage{name: domain.TransformVocabulary, suffix: " B", changed: true}
	p := NewPipeline(
		&stubStage{name: domain.TransformStructure, suffix: " A", changed: true},
		vocab,
	)

	opts := domain.TransformOptions{Structure: true}
	out, applied, err := p.Run(context.Background(), "텍스트", opts, 1.0, testRand())

	require.NoError(t, err)
	assert.Equal(t, "텍스트 A", out)
	assert.Equal(t, []string{"structure"}, applied)
	assert.Zero(t, vocab.calls)
}

func TestPipeline_NoOpStageIsNotListed(t *testing.T) {
	p := NewPipeline(
		&stubStage{name: domain.TransformStructure, changed: false},
		&stubStage{name: domain.TransformNoise, suffix: " C", changed: true},
	)

	out, applied, err := p.Run(context.Background(), "텍스트", allOptions(), 1.0, testRand())

	require.NoError(t, err)
	assert.Equal(t, "텍스트 C", out)
	assert.Equal(t, []string{"noise"}, applied)
}

func TestPipeline_StageErrorWrapsName(t *testing.T) {
	stageErr := errors.New("boom")
	p := NewPipeline(&stubStage{name: domain.TransformStructure, err: stageErr})

	_, _, err := p.Run(context.Background(), "텍스트", allOptions(), 1.0, testRand())

	require.Error(t, err)
	assert.ErrorIs(t, err, stageErr)
	assert.Contains(t, err.Error(), "structure")
}

func TestPipeline_CancelledContextReturnsNoPartialText(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	noise := &stubStage{name: domain.TransformNoise, suffix: " C", changed: true}
	p := NewPipeline(noise)

	out, applied, err := p.Run(ctx, "텍스트", allOptions(), 1.0, testRand())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
	assert.Nil(t, applied)
	assert.Zero(t, noise.calls)
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	assert.Zero(t, p.Len())

	p.Add(&stubStage{name: domain.TransformNoise})
	assert.Equal(t, 1, p.Len())
}

func TestRegistry_BuildKnown(t *testing.T) {
	r := NewRegistry()
	r.Register("stub", func(_ map[string]any) (driven.Transformer, error) {
		return &stubStage{name: "stub"}, nil
	})

	tr, err := r.Build("stub", nil)

	require.NoError(t, err)
	assert.Equal(t, "stub", tr.Name())
	assert.True(t, r.Has("stub"))
}

func TestRegistry_BuildUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("nonexistent", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transformer")
	assert.False(t, r.Has("nonexistent"))
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, Deps{})

	for _, name := range domain.PipelineOrder {
		assert.True(t, r.Has(name), "stage %s should be registered", name)
	}
	assert.Len(t, r.Names(), 3)
}

func TestRegisterDefaults_BuildsWithConfig(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, Deps{})

	tr, err := r.Build("structure", map[string]any{
		"split_threshold": int64(25),
		"merge_threshold": 4,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TransformStructure, tr.Name())
}
