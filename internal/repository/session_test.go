package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/wordguess"
	"github.com/rocketscienceinc/puzzlehub-backend/testing/suite"
)

func newWordSession(id string) *Session {
	category := entity.Category{ID: 1, Name: "Word Guessing Challenge", GameType: entity.GameTypeWord}
	words := []entity.Word{
		{ID: 1, Word: "CAT", CategoryID: 1, Hints: []string{"Feline", "Purrs", "Chases mice"}},
	}

	return &Session{
		ID:        id,
		Kind:      entity.GameTypeWord,
		StartedAt: 1700000000,
		WordGuess: wordguess.NewSession(&category, words),
	}
}

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage)

	// Given: a fresh word-guess session
	session := newWordSession("abc-123")

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// Given: a stored session with some progress
		session := newWordSession("abc-123")
		_, err := session.WordGuess.GuessLetter("C")
		require.NoError(t, err)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with the existing id
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the envelope and engine state round-trip
		require.NoError(t, err)
		assert.Equal(t, session.ID, retrieved.ID)
		assert.Equal(t, entity.GameTypeWord, retrieved.Kind)
		assert.Equal(t, session.StartedAt, retrieved.StartedAt)
		require.NotNil(t, retrieved.WordGuess)
		assert.Equal(t, []string{"C"}, retrieved.WordGuess.GuessedLetters)
		assert.Nil(t, retrieved.Memory)
		assert.Nil(t, retrieved.Sequence)
		assert.Nil(t, retrieved.Crossword)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// When: GetByID is called with an unknown id
		retrieved, err := sessionRepo.GetByID(ctx, "no-such-session")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage)

	// Given: a stored session
	session := newWordSession("abc-123")
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

	// When: DeleteByID is called
	err := sessionRepo.DeleteByID(ctx, session.ID)
	require.NoError(t, err)

	// Then: the session is gone
	_, err = sessionRepo.GetByID(ctx, session.ID)
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
}
