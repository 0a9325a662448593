package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/memorymatch"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/repository"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/sequence"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/wordguess"
)

type memSessionRepo struct {
	sessions map[string]*repository.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*repository.Session{}}
}

func (that *memSessionRepo) CreateOrUpdate(_ context.Context, session *repository.Session) error {
	that.sessions[session.ID] = session
	return nil
}

func (that *memSessionRepo) GetByID(_ context.Context, id string) (*repository.Session, error) {
	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}
	return session, nil
}

func (that *memSessionRepo) DeleteByID(_ context.Context, id string) error {
	delete(that.sessions, id)
	return nil
}

func newTestSessionService(t *testing.T) (*sessionService, *memSessionRepo, *memScoreRepo) {
	t.Helper()

	sessionRepo := newMemSessionRepo()
	scoreRepo := &memScoreRepo{}
	scores := NewScoreService(testLogger(), scoreRepo, nil)

	svc, ok := NewSessionService(testLogger(), repository.NewCatalogRepository(), sessionRepo, scores).(*sessionService)
	require.True(t, ok)

	return svc, sessionRepo, scoreRepo
}

func TestSessionService_StartWordGame(t *testing.T) {
	t.Run("StartWordGame_Success", func(t *testing.T) {
		ctx := context.Background()
		svc, sessionRepo, _ := newTestSessionService(t)

		// When: a word game is started in the word category
		session, err := svc.StartWordGame(ctx, 1, 0)

		// Then: a stored session with the default word count comes back
		require.NoError(t, err)
		assert.Equal(t, entity.GameTypeWord, session.Kind)
		require.NotNil(t, session.WordGuess)
		assert.Len(t, session.WordGuess.Words, defaultWordCount)
		assert.Contains(t, sessionRepo.sessions, session.ID)
	})

	t.Run("StartWordGame_WrongCategory", func(t *testing.T) {
		ctx := context.Background()
		svc, _, _ := newTestSessionService(t)

		// When: a word game is started in the memory category
		session, err := svc.StartWordGame(ctx, 2, 0)

		// Then: ErrWrongGameType is returned
		require.ErrorIs(t, err, apperror.ErrWrongGameType)
		assert.Nil(t, session)
	})

	t.Run("StartWordGame_CategoryNotFound", func(t *testing.T) {
		ctx := context.Background()
		svc, _, _ := newTestSessionService(t)

		// When: a word game is started in an unknown category
		_, err := svc.StartWordGame(ctx, 999, 0)

		// Then: ErrCategoryNotFound surfaces through the wrap
		require.ErrorIs(t, err, apperror.ErrCategoryNotFound)
	})
}

func TestSessionService_GuessLetter_WinSettlesScore(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo, scoreRepo := newTestSessionService(t)

	// Given: a stored session over the single word CAT
	category := &entity.Category{ID: 1, Name: "Word Guessing Challenge", GameType: entity.GameTypeWord}
	words := []entity.Word{{ID: 1, Word: "CAT", CategoryID: 1, Hints: []string{"Feline", "Purrs", "Chases mice"}}}
	stored := &repository.Session{
		ID:        "word-1",
		Kind:      entity.GameTypeWord,
		StartedAt: time.Now().Unix(),
		WordGuess: wordguess.NewSession(category, words),
	}
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, stored))

	// When: the word is guessed out letter by letter
	for _, letter := range []string{"C", "A", "T"} {
		session, correct, err := svc.GuessLetter(ctx, "word-1", letter)
		require.NoError(t, err)
		require.True(t, correct)
		require.NotNil(t, session)
	}

	// Then: the word is won and the win is settled into the score record
	final, err := sessionRepo.GetByID(ctx, "word-1")
	require.NoError(t, err)
	assert.True(t, final.WordGuess.IsWon())
	assert.Equal(t, 30, final.WordGuess.TotalScore)

	require.NotNil(t, scoreRepo.score)
	assert.Equal(t, 1, scoreRepo.score.WordsSolved)
	assert.Equal(t, 30, scoreRepo.score.BestScore)
}

func TestSessionService_NextWord_CompleteRemovesSession(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo, _ := newTestSessionService(t)

	// Given: a session already on its last word
	category := &entity.Category{ID: 1, Name: "Word Guessing Challenge", GameType: entity.GameTypeWord}
	words := []entity.Word{{ID: 1, Word: "CAT", CategoryID: 1, Hints: []string{"Feline", "Purrs", "Chases mice"}}}
	stored := &repository.Session{
		ID:        "word-1",
		Kind:      entity.GameTypeWord,
		StartedAt: time.Now().Unix(),
		WordGuess: wordguess.NewSession(category, words),
	}
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, stored))

	// When: the session advances past the last word
	session, err := svc.NextWord(ctx, "word-1")

	// Then: ErrSessionComplete comes back with the final state, the session is gone
	require.ErrorIs(t, err, apperror.ErrSessionComplete)
	require.NotNil(t, session)
	assert.NotContains(t, sessionRepo.sessions, "word-1")
}

func TestSessionService_StartMemoryGame(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestSessionService(t)

	// When: a medium memory game is started
	session, err := svc.StartMemoryGame(ctx, 2, 2, 0)

	// Then: eight pairs and the matching countdown come back
	require.NoError(t, err)
	assert.Equal(t, entity.GameTypeMemory, session.Kind)
	require.NotNil(t, session.Memory)
	assert.Len(t, session.Memory.Cards, 16)
	assert.Equal(t, 8, session.Memory.RemainingPairs)
	assert.Equal(t, 90, session.Memory.TimeLimit)
}

func TestSessionService_FlipCard_ClockRunsOut(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo, _ := newTestSessionService(t)

	frozen := time.Unix(1700000000, 0)
	svc.now = func() time.Time { return frozen }

	// Given: an easy round started 200 seconds ago, past the 120 second limit
	category := &entity.Category{ID: 2, Name: "Memory Matching", GameType: entity.GameTypeMemory}
	stored := &repository.Session{
		ID:        "memory-1",
		Kind:      entity.GameTypeMemory,
		StartedAt: frozen.Unix() - 200,
		Memory:    memorymatch.NewSession(category, []string{"🐘", "🦒", "🦁"}, 1),
	}
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, stored))

	// When: a card is flipped
	session, result, err := svc.FlipCard(ctx, "memory-1", 1)

	// Then: the round is over on time, the flip never lands, the session is gone
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, memorymatch.StatusTimeUp, session.Memory.GameStatus)
	assert.NotContains(t, sessionRepo.sessions, "memory-1")
}

func TestSessionService_SubmitAnswer_TerminalRemovesSession(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo, scoreRepo := newTestSessionService(t)

	// Given: a sequence run down to its last life
	category := &entity.Category{ID: 3, Name: "Number Sequences", GameType: entity.GameTypeNumber}
	engine := sequence.NewSession(category)
	engine.Lives = 1
	stored := &repository.Session{
		ID:        "sequence-1",
		Kind:      entity.GameTypeNumber,
		StartedAt: time.Now().Unix(),
		Sequence:  engine,
	}
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, stored))

	// When: a wrong answer spends the last life
	session, result, err := svc.SubmitAnswer(ctx, "sequence-1", "9999")

	// Then: the run fails, is settled and removed
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Correct)
	assert.True(t, session.Sequence.IsFailure())
	assert.NotContains(t, sessionRepo.sessions, "sequence-1")

	require.NotNil(t, scoreRepo.score)
	assert.Zero(t, scoreRepo.score.NumberSequencesSolved)
}

func TestSessionService_WrongKindIsRejected(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo, _ := newTestSessionService(t)

	// Given: a stored sequence session
	category := &entity.Category{ID: 3, Name: "Number Sequences", GameType: entity.GameTypeNumber}
	stored := &repository.Session{
		ID:        "sequence-1",
		Kind:      entity.GameTypeNumber,
		StartedAt: time.Now().Unix(),
		Sequence:  sequence.NewSession(category),
	}
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, stored))

	// When: a word-game move targets it
	_, _, err := svc.GuessLetter(ctx, "sequence-1", "A")

	// Then: ErrWrongGameType is returned
	require.ErrorIs(t, err, apperror.ErrWrongGameType)
}

func TestSessionService_StartCrosswordGame(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo, _ := newTestSessionService(t)

	// When: a crossword is started in the crossword category
	session, err := svc.StartCrosswordGame(ctx, 4)

	// Then: a fresh grid with a running countdown comes back
	require.NoError(t, err)
	assert.Equal(t, entity.GameTypeCrossword, session.Kind)
	require.NotNil(t, session.Crossword)
	assert.Equal(t, 600, session.Crossword.TimeLimit)
	assert.Contains(t, sessionRepo.sessions, session.ID)
}

func TestSessionService_RestartMemoryGame_KeepsDifficulty(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestSessionService(t)

	session, err := svc.StartMemoryGame(ctx, 2, 3, 0)
	require.NoError(t, err)

	// nudge some state so the restart visibly resets it
	_, _, err = svc.FlipCard(ctx, session.ID, 1)
	require.NoError(t, err)

	// When: the round restarts
	restarted, err := svc.RestartMemoryGame(ctx, session.ID)

	// Then: a fresh deck at the same difficulty under the same id
	require.NoError(t, err)
	assert.Equal(t, session.ID, restarted.ID)
	assert.Equal(t, 3, restarted.Memory.Difficulty)
	assert.Empty(t, restarted.Memory.FlippedIDs)
	assert.Zero(t, restarted.Memory.Moves)
}
