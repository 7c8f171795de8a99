package vocab

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	words := Words()
	require.NotEmpty(t, words)

	seen := make(map[string]bool)
	for _, w := range words {
		assert.NotEmpty(t, w.Word)
		assert.NotEmpty(t, w.Meaning)
		assert.False(t, seen[w.Word], "duplicate word %q", w.Word)
		seen[w.Word] = true
	}
}

func TestFindWord(t *testing.T) {
	w, ok := FindWord("arcane")
	require.True(t, ok)
	assert.Equal(t, "arcane", w.Word)

	_, ok = FindWord("nosuchword")
	assert.False(t, ok)
}

func TestUnitsWellFormed(t *testing.T) {
	us := Units()
	require.NotEmpty(t, us)

	for _, u := range us {
		require.NotEmpty(t, u.Questions, "unit %d", u.ID)
		for _, q := range u.Questions {
			labels := make(map[string]bool)
			for _, o := range q.Options {
				labels[o.Label] = true
			}
			assert.True(t, labels[q.Answer],
				"unit %d question %d answer %q not among options", u.ID, q.ID, q.Answer)
		}
	}
}

func TestFindUnit(t *testing.T) {
	u, ok := FindUnit(1)
	require.True(t, ok)
	assert.Equal(t, 1, u.ID)

	_, ok = FindUnit(99)
	assert.False(t, ok)
}

func TestQuizQuestions(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	u, ok := FindUnit(1)
	require.True(t, ok)

	qs := QuizQuestions(r, u)
	assert.Len(t, qs, QuizSize)

	seen := make(map[int]bool)
	for _, q := range qs {
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}

	// short units keep all of their questions
	u3, ok := FindUnit(3)
	require.True(t, ok)
	assert.Len(t, QuizQuestions(r, u3), len(u3.Questions))
}

func TestQuizQuestionsDoesNotMutateUnit(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	u, ok := FindUnit(1)
	require.True(t, ok)
	first := u.Questions[0].ID

	QuizQuestions(r, u)

	u2, _ := FindUnit(1)
	assert.Equal(t, first, u2.Questions[0].ID)
}

func TestSprintRound(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		target, options := SprintRound(r, Words())
		require.Len(t, options, SprintOptionCount)

		found := 0
		seen := make(map[string]bool)
		for _, o := range options {
			assert.False(t, seen[o.Word])
			seen[o.Word] = true
			if o.Word == target.Word {
				found++
			}
		}
		assert.Equal(t, 1, found)
	}
}

func TestSprintScore(t *testing.T) {
	assert.Equal(t, 10, SprintScore(0, true))
	assert.Equal(t, 20, SprintScore(10, true))
	assert.Equal(t, 5, SprintScore(10, false))
	assert.Equal(t, 0, SprintScore(3, false))
	assert.Equal(t, 0, SprintScore(0, false))
}

func TestNoopMediaGenerator(t *testing.T) {
	g := NewNoopMediaGenerator()
	ctx := context.Background()

	url, err := g.IllustrationURL(ctx, "arcane")
	require.NoError(t, err)
	assert.Empty(t, url)

	url, err = g.PronunciationURL(ctx, "arcane")
	require.NoError(t, err)
	assert.Empty(t, url)
}
