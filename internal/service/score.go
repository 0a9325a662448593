package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/crossword"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/memorymatch"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/sequence"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/wordguess"
)

type ScoreService interface {
	Get(ctx context.Context) (*entity.UserScore, error)
	Replace(ctx context.Context, score *entity.UserScore) (*entity.UserScore, error)
	Patch(ctx context.Context, patch *entity.ScorePatch) (*entity.UserScore, error)

	RecordWordWin(ctx context.Context, session *wordguess.Session) error
	RecordMemoryWin(ctx context.Context, session *memorymatch.Session) error
	RecordSequenceResult(ctx context.Context, session *sequence.Session) error
	RecordCrosswordWin(ctx context.Context, session *crossword.Session) error
}

type scoreRepo interface {
	Get(ctx context.Context) (*entity.UserScore, error)
	Save(ctx context.Context, score *entity.UserScore) error
}

type roundArchive interface {
	InsertRoundResult(ctx context.Context, result *entity.RoundResult) error
}

type scoreService struct {
	logger    *slog.Logger
	scoreRepo scoreRepo
	archive   roundArchive

	now func() time.Time
}

func NewScoreService(logger *slog.Logger, scoreRepo scoreRepo, archive roundArchive) ScoreService {
	return &scoreService{
		logger:    logger,
		scoreRepo: scoreRepo,
		archive:   archive,
		now:       time.Now,
	}
}

func (that *scoreService) Get(ctx context.Context) (*entity.UserScore, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve score from storage: %w", err)
	}

	return score, nil
}

// Replace overwrites the whole record.
func (that *scoreService) Replace(ctx context.Context, score *entity.UserScore) (*entity.UserScore, error) {
	score.ID = 1
	if score.CategoryProgress == nil {
		score.CategoryProgress = map[string]int{}
	}

	if err := that.scoreRepo.Save(ctx, score); err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	return score, nil
}

// Patch merges the provided fields into the stored record.
func (that *scoreService) Patch(ctx context.Context, patch *entity.ScorePatch) (*entity.UserScore, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve score from storage: %w", err)
	}

	score.Apply(*patch)

	if err = that.scoreRepo.Save(ctx, score); err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	return score, nil
}

// RecordWordWin credits one solved word: the running total competes for the
// best score and the per-word points land in the category progress.
func (that *scoreService) RecordWordWin(ctx context.Context, session *wordguess.Session) error {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve score from storage: %w", err)
	}

	score.WordsSolved++
	if session.TotalScore > score.BestScore {
		score.BestScore = session.TotalScore
	}
	that.addCategoryProgress(score, session.CategoryID, session.Score)

	if err = that.scoreRepo.Save(ctx, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	that.archiveRound(ctx, &entity.RoundResult{
		GameType:   entity.GameTypeWord,
		CategoryID: session.CategoryID,
		Score:      session.Score,
		Won:        true,
	})

	return nil
}

func (that *scoreService) RecordMemoryWin(ctx context.Context, session *memorymatch.Session) error {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve score from storage: %w", err)
	}

	score.MemorySetsCompleted++
	if session.Score > score.BestScore {
		score.BestScore = session.Score
	}
	that.addCategoryProgress(score, session.CategoryID, session.Score)

	if err = that.scoreRepo.Save(ctx, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	that.archiveRound(ctx, &entity.RoundResult{
		GameType:   entity.GameTypeMemory,
		CategoryID: session.CategoryID,
		Score:      session.Score,
		Won:        true,
	})

	return nil
}

// RecordSequenceResult is called on both terminal outcomes: a failed run
// still banks the points collected on the way.
func (that *scoreService) RecordSequenceResult(ctx context.Context, session *sequence.Session) error {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve score from storage: %w", err)
	}

	if session.IsSuccess() {
		score.NumberSequencesSolved++
	}
	if session.Score > score.BestScore {
		score.BestScore = session.Score
	}
	that.addCategoryProgress(score, session.CategoryID, session.Score)

	if err = that.scoreRepo.Save(ctx, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	that.archiveRound(ctx, &entity.RoundResult{
		GameType:   entity.GameTypeNumber,
		CategoryID: session.CategoryID,
		Score:      session.Score,
		Won:        session.IsSuccess(),
	})

	return nil
}

func (that *scoreService) RecordCrosswordWin(ctx context.Context, session *crossword.Session) error {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve score from storage: %w", err)
	}

	score.CrosswordsCompleted++
	if session.Score > score.BestScore {
		score.BestScore = session.Score
	}
	that.addCategoryProgress(score, session.CategoryID, session.Score)

	if err = that.scoreRepo.Save(ctx, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	that.archiveRound(ctx, &entity.RoundResult{
		GameType:   entity.GameTypeCrossword,
		CategoryID: session.CategoryID,
		Score:      session.Score,
		Won:        true,
	})

	return nil
}

func (that *scoreService) addCategoryProgress(score *entity.UserScore, categoryID, points int) {
	if score.CategoryProgress == nil {
		score.CategoryProgress = map[string]int{}
	}
	score.CategoryProgress[strconv.Itoa(categoryID)] += points
}

// archiveRound is best effort: a broken archive must not fail the round.
func (that *scoreService) archiveRound(ctx context.Context, result *entity.RoundResult) {
	if that.archive == nil {
		return
	}

	result.FinishedAt = that.now()
	if err := that.archive.InsertRoundResult(ctx, result); err != nil {
		that.logger.Warn("failed to archive round result", "gameType", result.GameType, "error", err)
	}
}
