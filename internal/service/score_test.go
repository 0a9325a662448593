package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/memorymatch"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/sequence"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/wordguess"
)

type memScoreRepo struct {
	score *entity.UserScore
}

func (that *memScoreRepo) Get(_ context.Context) (*entity.UserScore, error) {
	if that.score == nil {
		return entity.NewUserScore(), nil
	}
	return that.score, nil
}

func (that *memScoreRepo) Save(_ context.Context, score *entity.UserScore) error {
	that.score = score
	return nil
}

type memArchive struct {
	rows []entity.RoundResult
	err  error
}

func (that *memArchive) InsertRoundResult(_ context.Context, result *entity.RoundResult) error {
	if that.err != nil {
		return that.err
	}
	that.rows = append(that.rows, *result)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScoreService_Patch(t *testing.T) {
	ctx := context.Background()
	repo := &memScoreRepo{}
	scores := NewScoreService(testLogger(), repo, nil)

	// Given: a stored record with a best score
	stored := entity.NewUserScore()
	stored.BestScore = 50
	require.NoError(t, repo.Save(ctx, stored))

	// When: only wordsSolved is patched
	wordsSolved := 4
	updated, err := scores.Patch(ctx, &entity.ScorePatch{WordsSolved: &wordsSolved})

	// Then: the patched field changes, everything else is retained
	require.NoError(t, err)
	assert.Equal(t, 4, updated.WordsSolved)
	assert.Equal(t, 50, updated.BestScore)
}

func TestScoreService_RecordWordWin(t *testing.T) {
	ctx := context.Background()
	repo := &memScoreRepo{}
	archive := &memArchive{}
	scores := NewScoreService(testLogger(), repo, archive)

	// Given: a won word with 30 points on the running total
	session := &wordguess.Session{CategoryID: 1, Score: 30, TotalScore: 30}

	// When: the win is recorded
	err := scores.RecordWordWin(ctx, session)

	// Then: the counters, the best score and the category progress move
	require.NoError(t, err)
	assert.Equal(t, 1, repo.score.WordsSolved)
	assert.Equal(t, 30, repo.score.BestScore)
	assert.Equal(t, 30, repo.score.CategoryProgress["1"])

	require.Len(t, archive.rows, 1)
	assert.Equal(t, entity.GameTypeWord, archive.rows[0].GameType)
	assert.True(t, archive.rows[0].Won)

	// When: a weaker run wins another word
	err = scores.RecordWordWin(ctx, &wordguess.Session{CategoryID: 1, Score: 5, TotalScore: 5})

	// Then: the best score stands, the progress accrues
	require.NoError(t, err)
	assert.Equal(t, 2, repo.score.WordsSolved)
	assert.Equal(t, 30, repo.score.BestScore)
	assert.Equal(t, 35, repo.score.CategoryProgress["1"])
}

func TestScoreService_RecordSequenceResult_Failure(t *testing.T) {
	ctx := context.Background()
	repo := &memScoreRepo{}
	archive := &memArchive{}
	scores := NewScoreService(testLogger(), repo, archive)

	// Given: a failed run that still collected 40 points
	session := &sequence.Session{CategoryID: 3, Score: 40, GameStatus: sequence.StatusFailure}

	// When: the terminal result is recorded
	err := scores.RecordSequenceResult(ctx, session)

	// Then: the points bank, the solved counter does not move
	require.NoError(t, err)
	assert.Zero(t, repo.score.NumberSequencesSolved)
	assert.Equal(t, 40, repo.score.BestScore)
	assert.Equal(t, 40, repo.score.CategoryProgress["3"])

	require.Len(t, archive.rows, 1)
	assert.False(t, archive.rows[0].Won)
}

func TestScoreService_ArchiveFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	repo := &memScoreRepo{}
	archive := &memArchive{err: errors.New("disk full")}
	scores := NewScoreService(testLogger(), repo, archive)

	// When: a win is recorded while the archive is broken
	err := scores.RecordMemoryWin(ctx, &memorymatch.Session{CategoryID: 2, Score: 90})

	// Then: the score record is still updated
	require.NoError(t, err)
	assert.Equal(t, 1, repo.score.MemorySetsCompleted)
	assert.Equal(t, 90, repo.score.BestScore)
}
