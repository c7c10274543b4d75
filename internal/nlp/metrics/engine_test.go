package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
)

func newEngine() *Engine {
	return New(segment.New())
}

func TestCompute_EmptyInput(t *testing.T) {
	engine := newEngine()

	_, err := engine.Compute("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.Compute("   \n\t ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_PunctuationOnlyIsDegenerate(t *testing.T) {
	engine := newEngine()

	m, err := engine.Compute("... !!!")

	require.NoError(t, err)
	assert.Equal(t, 0, m.SentenceCount)
	assert.Equal(t, 0, m.WordCount)
	assert.Zero(t, m.AvgSentenceLength)
	assert.Zero(t, m.VocabularyDiversity)
}

func TestCompute_SingleSentence(t *testing.T) {
	engine := newEngine()

	m, err := engine.Compute("인공지능 기술이 빠르게 발전하고 있다.")

	require.NoError(t, err)
	assert.Equal(t, 1, m.SentenceCount)
	assert.Equal(t, 5, m.WordCount)
	assert.InDelta(t, 5.0, m.AvgSentenceLength, 1e-9)
	// One sentence has no length spread.
	assert.Zero(t, m.LengthStd)
	// All five words are distinct.
	assert.InDelta(t, 1.0, m.VocabularyDiversity, 1e-9)
}

func TestCompute_UniformLengths(t *testing.T) {
	engine := newEngine()

	m, err := engine.Compute("하나 둘 셋 넷이다. 다섯 여섯 일곱 여덟이다.")

	require.NoError(t, err)
	assert.Equal(t, 2, m.SentenceCount)
	assert.Equal(t, []int{4, 4}, m.SentenceLengths)
	assert.Zero(t, m.LengthStd)
}

func TestCompute_LengthSpread(t *testing.T) {
	engine := newEngine()

	m, err := engine.Compute("짧다. 이것은 조금 더 긴 문장이다.")

	require.NoError(t, err)
	require.Equal(t, []int{1, 5}, m.SentenceLengths)
	assert.InDelta(t, 3.0, m.AvgSentenceLength, 1e-9)
	// Population std of {1, 5} is 2.
	assert.InDelta(t, 2.0, m.LengthStd, 1e-9)
}

func TestCompute_DiversityCountsRepeats(t *testing.T) {
	engine := newEngine()

	m, err := engine.Compute("word word word word.")

	require.NoError(t, err)
	assert.Equal(t, 4, m.WordCount)
	assert.InDelta(t, 0.25, m.VocabularyDiversity, 1e-9)
}

func TestCompute_DiversityCaseInsensitive(t *testing.T) {
	engine := newEngine()

	m, err := engine.Compute("Word word WORD.")

	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, m.VocabularyDiversity, 1e-9)
}

func TestCompute_Idempotent(t *testing.T) {
	engine := newEngine()
	text := "기술이 발전했다. 그러나 한계가 있다. 따라서 개선이 필요하다."

	first, err := engine.Compute(text)
	require.NoError(t, err)
	second, err := engine.Compute(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_BurstinessBounds(t *testing.T) {
	engine := newEngine()

	m, err := engine.Compute("하나의 단어가 반복된다 반복된다 반복된다 그리고 멈춘다.")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.Burstiness, -1.0)
	assert.LessOrEqual(t, m.Burstiness, 1.0)
}
