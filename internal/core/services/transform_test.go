package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/metrics"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
	"github.com/custodia-labs/rephrase-cli/internal/transformers"
	"github.com/custodia-labs/rephrase-cli/internal/transformers/vocabulary"
	"github.com/custodia-labs/rephrase-cli/internal/wordlists"
)

// failingOracle always errors, standing in for an unreachable endpoint.
type failingOracle struct{}

func (failingOracle) SuggestSynonym(_ context.Context, _, _ string) (string, error) {
	return "", domain.ErrOracleUnavailable
}

func (failingOracle) ModelName() string { return "failing" }

func (failingOracle) Ping(_ context.Context) error { return domain.ErrOracleUnavailable }

func (failingOracle) Close() error { return nil }

// newTestService wires the real engine, wordlists and stages, the way
// the composition root does, with a fixed seed.
func newTestService(t *testing.T, opts ...ServiceOption) *TransformService {
	t.Helper()

	seg := segment.New()
	engine := metrics.New(seg)
	store, err := wordlists.NewStore("")
	require.NoError(t, err)

	registry := transformers.NewRegistry()
	transformers.RegisterDefaults(registry, transformers.Deps{
		Segmenter: seg,
		Wordlists: store,
	})

	pipeline := transformers.NewPipeline()
	for _, name := range domain.PipelineOrder {
		stage, err := registry.Build(name, nil)
		require.NoError(t, err)
		pipeline.Add(stage)
	}

	if len(opts) == 0 {
		opts = []ServiceOption{WithSeed(42)}
	}
	return NewTransformService(engine, pipeline, nil, opts...)
}

func allOptions() domain.TransformOptions {
	return domain.TransformOptions{Structure: true, Vocabulary: true, Noise: true}
}

const koreanSample = "인공지능 기술은 빠르게 발전하고 있다. 그러나 여전히 한계가 존재한다. 따라서 추가 연구가 필요하다."

func TestTransform_FullIntensityAppliesAllTransforms(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Options:   allOptions(),
		Intensity: 1.0,
	})

	require.NoError(t, err)
	assert.Equal(t, koreanSample, result.Original)
	assert.NotEqual(t, koreanSample, result.Transformed)
	assert.Equal(t, []string{"structure", "vocabulary", "noise"}, result.AppliedTransforms)
	assert.Equal(t, 3, result.Metrics.OriginalSentenceCount)
	assert.Positive(t, result.Metrics.TransformedSentenceCount)
}

func TestTransform_LoneLongSentenceSplitsAndVaries(t *testing.T) {
	svc := newTestService(t)

	// A single sentence above the split threshold, opening with a
	// mapped connector and carrying a 고-connective boundary.
	text := "그러나 인공지능 기술은 최근 몇 년 동안 아주 빠른 속도로 발전을 거듭해 왔고 아직도 많은 연구자들이 새로운 방법을 찾기 위해 꾸준히 노력하고 있다."

	result, err := svc.Transform(context.Background(), domain.TransformRequest{
		Text:      text,
		Options:   allOptions(),
		Intensity: 1.0,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"structure", "vocabulary", "noise"}, result.AppliedTransforms)
	assert.NotEqual(t, text, result.Transformed)
	assert.Equal(t, 1, result.Metrics.OriginalSentenceCount)
	// The lone sentence splits at the connective even though there is
	// nothing to merge with.
	assert.GreaterOrEqual(t, result.Metrics.TransformedSentenceCount, 2)
}

func TestTransform_NoOptionsIsIdentity(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Intensity: 0.8,
	})

	require.NoError(t, err)
	assert.Equal(t, koreanSample, result.Transformed)
	// Empty slice, not nil: the JSON field must encode as [].
	assert.NotNil(t, result.AppliedTransforms)
	assert.Empty(t, result.AppliedTransforms)
	// Metrics are still computed for the unchanged text.
	assert.Equal(t, result.Metrics.OriginalSentenceCount, result.Metrics.TransformedSentenceCount)
}

func TestTransform_ZeroIntensityAppliesNothing(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Options:   allOptions(),
		Intensity: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, koreanSample, result.Transformed)
	assert.Empty(t, result.AppliedTransforms)
}

func TestTransform_InputBounds(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"single character", "가", false},
		{"max length", strings.Repeat("가", 10000), false},
		{"over max length", strings.Repeat("가", 10001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Transform(context.Background(), domain.TransformRequest{
				Text:      tt.text,
				Intensity: 0.5,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransform_IntensityBounds(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Intensity: 1.1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Intensity: -0.1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransform_SameSeedSameOutput(t *testing.T) {
	req := domain.TransformRequest{
		Text:      koreanSample,
		Options:   allOptions(),
		Intensity: 0.7,
	}

	first, err := newTestService(t, WithSeed(99)).Transform(context.Background(), req)
	require.NoError(t, err)
	second, err := newTestService(t, WithSeed(99)).Transform(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Transformed, second.Transformed)
	assert.Equal(t, first.AppliedTransforms, second.AppliedTransforms)
}

func TestTransform_CancelledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Transform(ctx, domain.TransformRequest{
		Text:      koreanSample,
		Options:   allOptions(),
		Intensity: 0.5,
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestTransform_OracleFailureDoesNotFailPipeline(t *testing.T) {
	seg := segment.New()
	engine := metrics.New(seg)
	store, err := wordlists.NewStore("")
	require.NoError(t, err)

	vocab := vocabulary.New(seg, store, vocabulary.WithOracle(failingOracle{}))
	pipeline := transformers.NewPipeline(vocab)
	svc := NewTransformService(engine, pipeline, failingOracle{}, WithSeed(42))

	result, err := svc.Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Options:   domain.TransformOptions{Vocabulary: true},
		Intensity: 1.0,
	})

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestTransform_AppliedListGrowsWithOptions(t *testing.T) {
	structureOnly, err := newTestService(t).Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Options:   domain.TransformOptions{Structure: true},
		Intensity: 1.0,
	})
	require.NoError(t, err)

	all, err := newTestService(t).Transform(context.Background(), domain.TransformRequest{
		Text:      koreanSample,
		Options:   allOptions(),
		Intensity: 1.0,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"structure"}, structureOnly.AppliedTransforms)
	assert.Subset(t, all.AppliedTransforms, structureOnly.AppliedTransforms)
}

func TestHealth(t *testing.T) {
	t.Run("no oracle", func(t *testing.T) {
		svc := newTestService(t)
		assert.False(t, svc.Health(context.Background()).OracleReachable)
	})

	t.Run("oracle configured", func(t *testing.T) {
		seg := segment.New()
		svc := NewTransformService(metrics.New(seg), transformers.NewPipeline(), failingOracle{})
		assert.True(t, svc.Health(context.Background()).OracleReachable)
	})
}
