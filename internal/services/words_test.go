package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/models"
)

func TestToggle_SaveThenUnsave(t *testing.T) {
	repo := &fakeRepo{records: []models.UserRecord{{Name: "Ana", Email: "a@test.com"}}}
	svc := NewWordService(repo)
	ctx := context.Background()

	saved, err := svc.Toggle(ctx, "a@test.com", "arcane")
	require.NoError(t, err)
	assert.True(t, saved)

	words, err := svc.SavedWords(ctx, "a@test.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"arcane"}, words)

	saved, err = svc.Toggle(ctx, "a@test.com", "arcane")
	require.NoError(t, err)
	assert.False(t, saved)

	words, err = svc.SavedWords(ctx, "a@test.com")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestToggle_NoDuplicates(t *testing.T) {
	repo := &fakeRepo{records: []models.UserRecord{{Name: "Ana", Email: "a@test.com"}}}
	svc := NewWordService(repo)
	ctx := context.Background()

	for _, w := range []string{"arcane", "belie", "arcane", "arcane"} {
		_, err := svc.Toggle(ctx, "a@test.com", w)
		require.NoError(t, err)
	}

	// arcane toggled three times ends up saved; never more than once.
	words, err := svc.SavedWords(ctx, "a@test.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"belie", "arcane"}, words)
}

func TestToggle_UnknownUser(t *testing.T) {
	svc := NewWordService(&fakeRepo{})

	_, err := svc.Toggle(context.Background(), "ghost@test.com", "arcane")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestToggle_DoesNotTouchOtherRecords(t *testing.T) {
	repo := &fakeRepo{records: []models.UserRecord{
		{Name: "Ana", Email: "a@test.com"},
		{Name: "Ben", Email: "b@test.com", SavedWords: []string{"belie"}, UnitProgress: map[int]int{1: 4}},
	}}
	svc := NewWordService(repo)

	_, err := svc.Toggle(context.Background(), "a@test.com", "arcane")
	require.NoError(t, err)

	ben := repo.records[1]
	assert.Equal(t, []string{"belie"}, ben.SavedWords)
	assert.Equal(t, map[int]int{1: 4}, ben.UnitProgress)
}

func TestSaved(t *testing.T) {
	repo := &fakeRepo{records: []models.UserRecord{{
		Name: "Ana", Email: "a@test.com", SavedWords: []string{"arcane"},
	}}}
	svc := NewWordService(repo)
	ctx := context.Background()

	ok, err := svc.Saved(ctx, "a@test.com", "arcane")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Saved(ctx, "a@test.com", "belie")
	require.NoError(t, err)
	assert.False(t, ok)
}
