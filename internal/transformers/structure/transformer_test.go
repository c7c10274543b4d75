package structure

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestName(t *testing.T) {
	tr := New(segment.New())
	assert.Equal(t, domain.TransformStructure, tr.Name())
}

func TestTransform_ZeroIntensityIsNoOp(t *testing.T) {
	tr := New(segment.New())

	out, err := tr.Transform(context.Background(), "그러나 결과는 예상과 달랐다.", 0, testRand())

	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, "그러나 결과는 예상과 달랐다.", out.Text)
}

func TestTransform_SplitsLongSentence(t *testing.T) {
	tr := New(segment.New(), WithSplitThreshold(5))

	out, err := tr.Transform(context.Background(),
		"인공지능 기술은 빠르게 발전했지만 여전히 한계가 분명하다.", 1.0, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Contains(t, out.Text, "발전했다.")
	assert.Len(t, segment.New().Sentences(out.Text), 2)
}

func TestTransform_MergesShortSentences(t *testing.T) {
	tr := New(segment.New())

	out, err := tr.Transform(context.Background(), "짧다. 그리고 늘고 있다.", 1.0, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	// Merged into one sentence, then the fronted segment swaps back.
	assert.Equal(t, "그리고 늘고 있다, 짧다.", out.Text)
}

func TestTransform_SetsOffFrontedConnector(t *testing.T) {
	tr := New(segment.New())

	out, err := tr.Transform(context.Background(), "그러나 결과는 예상과 달랐다.", 1.0, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "그러나, 결과는 예상과 달랐다.", out.Text)
}

func TestTransform_NothingToDoLeavesTextAlone(t *testing.T) {
	tr := New(segment.New())

	out, err := tr.Transform(context.Background(), "평범한 문장이다.", 1.0, testRand())

	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, "평범한 문장이다.", out.Text)
}

func TestTransform_PreservesParagraphBreaks(t *testing.T) {
	tr := New(segment.New())
	text := "그러나 첫 문단은 이렇게 시작한다.\n\n그러나 둘째 문단도 이렇게 시작한다."

	out, err := tr.Transform(context.Background(), text, 1.0, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Contains(t, out.Text, "\n\n")
}

func TestTransform_DeterministicForSameSeed(t *testing.T) {
	text := "짧다. 그리고 늘고 있다. 그러나 결과는 예상과 달랐다. 데이터가 충분히 쌓였고, 모델 성능도 함께 올라갔다."

	tr := New(segment.New(), WithSplitThreshold(6))

	first, err := tr.Transform(context.Background(), text, 0.7, rand.New(rand.NewPCG(3, 5)))
	require.NoError(t, err)
	second, err := tr.Transform(context.Background(), text, 0.7, rand.New(rand.NewPCG(3, 5)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNew_MergeThresholdClampedBelowSplit(t *testing.T) {
	tr := New(segment.New(), WithSplitThreshold(6), WithMergeThreshold(10))

	assert.Equal(t, 2, tr.mergeThreshold)
}
