package noise

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rephrase-cli/internal/nlp/segment"
)

// stubLists is a fixed wordlist provider.
type stubLists struct {
	lists *driven.Wordlists
}

func (s *stubLists) Lists() *driven.Wordlists {
	return s.lists
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func minimalLists() *stubLists {
	return &stubLists{lists: &driven.Wordlists{
		Transitions:    []string{"흥미롭게도"},
		Parentheticals: []string{"(정확히 말하자면)"},
	}}
}

func TestName(t *testing.T) {
	tr := New(segment.New(), minimalLists())
	assert.Equal(t, domain.TransformNoise, tr.Name())
}

func TestTransform_ZeroIntensityIsNoOp(t *testing.T) {
	tr := New(segment.New(), minimalLists())

	out, err := tr.Transform(context.Background(), "짧은 문장이다.", 0, testRand())

	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, "짧은 문장이다.", out.Text)
}

func TestTransform_PadsShortSentence(t *testing.T) {
	tr := New(segment.New(), minimalLists())

	out, err := tr.Transform(context.Background(), "짧은 문장이다.", 0.4, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "짧은 문장이다 (정확히 말하자면).", out.Text)
}

func TestTransform_SplitsLongSentence(t *testing.T) {
	tr := New(segment.New(), minimalLists())
	// 16 words with a comma boundary: long enough to shed a clause.
	text := "one two three four five six seven eight, nine ten eleven twelve thirteen fourteen fifteen sixteen."

	out, err := tr.Transform(context.Background(), text, 0.4, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Len(t, segment.New().Sentences(out.Text), 2)
}

func TestTransform_InsertsTransitions(t *testing.T) {
	tr := New(segment.New(), minimalLists())

	out, err := tr.Transform(context.Background(),
		"첫 문장은 이렇게 시작한다. 둘째 문장은 이렇게 이어진다. 셋째 문장은 이렇게 끝난다.", 1.0, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Contains(t, out.Text, "흥미롭게도, ")
}

func TestTransform_SubstitutesRareSynonymsAboveGate(t *testing.T) {
	provider := &stubLists{lists: &driven.Wordlists{
		Parentheticals: []string{"(테스트)"},
		RareSynonyms:   map[string][]string{"중요하다": {"긴요하다"}},
	}}
	tr := New(segment.New(), provider)

	out, err := tr.Transform(context.Background(), "이 연구는 중요하다. 그 결과도 중요하다.", 1.0, testRand())

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Contains(t, out.Text, "긴요하다")
	assert.NotContains(t, out.Text, "중요하다")
}

func TestTransform_RareSynonymsSkippedBelowGate(t *testing.T) {
	provider := &stubLists{lists: &driven.Wordlists{
		Parentheticals: []string{"(테스트)"},
		RareSynonyms:   map[string][]string{"중요하다": {"긴요하다"}},
	}}
	tr := New(segment.New(), provider)

	out, err := tr.Transform(context.Background(), "이 연구는 아주 중요하다.", 0.3, testRand())

	require.NoError(t, err)
	assert.NotContains(t, out.Text, "긴요하다")
}

func TestTransform_PreservesParagraphBreaks(t *testing.T) {
	tr := New(segment.New(), minimalLists())
	text := "첫 문단의 문장이다.\n\n둘째 문단의 문장이다."

	out, err := tr.Transform(context.Background(), text, 0.4, testRand())

	require.NoError(t, err)
	assert.Contains(t, out.Text, "\n\n")
}

func TestRecentPhrases_NoRepeatWithinWindow(t *testing.T) {
	recent := newRecentPhrases(3)
	pool := []string{"하나"}

	assert.Equal(t, "하나", recent.pick(pool, testRand()))
	// The only phrase is now inside the window; the pool is exhausted.
	assert.Empty(t, recent.pick(pool, testRand()))
}

func TestRecentPhrases_WindowSlides(t *testing.T) {
	recent := newRecentPhrases(1)
	rng := testRand()

	first := recent.pick([]string{"하나", "둘"}, rng)
	second := recent.pick([]string{"하나", "둘"}, rng)

	assert.NotEqual(t, first, second)
	// After one more pick the first phrase has left the window.
	third := recent.pick([]string{"하나", "둘"}, rng)
	assert.Equal(t, first, third)
}
