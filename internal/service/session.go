package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/crossword"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/memorymatch"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/repository"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/sequence"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/wordguess"
)

const defaultWordCount = 10

// SessionService hosts every mini-game round: it bootstraps engine state,
// replays wall-clock time into the countdown engines before each move, and
// settles finished rounds into the score record.
type SessionService interface {
	StartWordGame(ctx context.Context, categoryID, wordCount int) (*repository.Session, error)
	GuessLetter(ctx context.Context, id, letter string) (*repository.Session, bool, error)
	UseWordHint(ctx context.Context, id string) (*repository.Session, string, error)
	NextWord(ctx context.Context, id string) (*repository.Session, error)
	RestartWordGame(ctx context.Context, id string) (*repository.Session, error)

	StartMemoryGame(ctx context.Context, categoryID, difficulty, cardCount int) (*repository.Session, error)
	FlipCard(ctx context.Context, id string, cardID int) (*repository.Session, *memorymatch.FlipResult, error)
	RestartMemoryGame(ctx context.Context, id string) (*repository.Session, error)

	StartSequenceGame(ctx context.Context, categoryID int) (*repository.Session, error)
	SubmitAnswer(ctx context.Context, id, answer string) (*repository.Session, *sequence.SubmitResult, error)
	ToggleSequenceHint(ctx context.Context, id string) (*repository.Session, error)
	RestartSequenceGame(ctx context.Context, id string) (*repository.Session, error)

	StartCrosswordGame(ctx context.Context, categoryID int) (*repository.Session, error)
	SelectCell(ctx context.Context, id string, row, col int) (*repository.Session, error)
	InputLetter(ctx context.Context, id string, row, col int, letter string) (*repository.Session, error)
	UseCrosswordHint(ctx context.Context, id string) (*repository.Session, error)
	ToggleDirection(ctx context.Context, id string) (*repository.Session, error)
	MoveCursor(ctx context.Context, id, key string) (*repository.Session, error)
	RestartCrosswordGame(ctx context.Context, id string) (*repository.Session, error)
}

type catalogRepo interface {
	GetCategoryByID(ctx context.Context, id int) (*entity.Category, error)
	GetRandomWordsByCategoryID(ctx context.Context, categoryID, count int) ([]entity.Word, error)
	GetRandomCardValues(ctx context.Context, categoryID, difficulty, count int) ([]string, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *repository.Session) error
	GetByID(ctx context.Context, id string) (*repository.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionService struct {
	logger      *slog.Logger
	catalogRepo catalogRepo
	sessionRepo sessionRepo
	scores      ScoreService

	now func() time.Time
}

func NewSessionService(logger *slog.Logger, catalogRepo catalogRepo, sessionRepo sessionRepo, scores ScoreService) SessionService {
	return &sessionService{
		logger:      logger,
		catalogRepo: catalogRepo,
		sessionRepo: sessionRepo,
		scores:      scores,
		now:         time.Now,
	}
}

// pairsFor maps difficulty 1/2/3 to the deck size in pairs.
func pairsFor(difficulty int) int {
	switch difficulty {
	case 2:
		return 8
	case 3:
		return 10
	default:
		return 6
	}
}

func (that *sessionService) StartWordGame(ctx context.Context, categoryID, wordCount int) (*repository.Session, error) {
	category, err := that.catalogRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	if !category.IsWordGame() {
		return nil, apperror.ErrWrongGameType
	}

	if wordCount <= 0 {
		wordCount = defaultWordCount
	}

	words, err := that.catalogRepo.GetRandomWordsByCategoryID(ctx, categoryID, wordCount)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve words: %w", err)
	}

	if len(words) == 0 {
		return nil, apperror.ErrNoWordsFound
	}

	session := &repository.Session{
		ID:        uuid.NewString(),
		Kind:      entity.GameTypeWord,
		StartedAt: that.now().Unix(),
		WordGuess: wordguess.NewSession(category, words),
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (that *sessionService) GuessLetter(ctx context.Context, id, letter string) (*repository.Session, bool, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeWord)
	if err != nil {
		return nil, false, err
	}

	correct, err := session.WordGuess.GuessLetter(letter)
	if err != nil {
		return nil, false, err
	}

	if session.WordGuess.IsWon() {
		that.settleWordWin(ctx, session.WordGuess)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, false, fmt.Errorf("failed to update session: %w", err)
	}

	return session, correct, nil
}

func (that *sessionService) UseWordHint(ctx context.Context, id string) (*repository.Session, string, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeWord)
	if err != nil {
		return nil, "", err
	}

	letter, err := session.WordGuess.UseHint()
	if err != nil {
		return nil, "", err
	}

	if session.WordGuess.IsWon() {
		that.settleWordWin(ctx, session.WordGuess)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to update session: %w", err)
	}

	return session, letter, nil
}

// NextWord advances to the next word. Advancing past the last word ends the
// play-through: the session is removed and ErrSessionComplete is returned
// with the final state.
func (that *sessionService) NextWord(ctx context.Context, id string) (*repository.Session, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeWord)
	if err != nil {
		return nil, err
	}

	if err = session.WordGuess.NextWord(); err != nil {
		if errors.Is(err, apperror.ErrSessionComplete) {
			if deleteErr := that.sessionRepo.DeleteByID(ctx, id); deleteErr != nil {
				that.logger.Warn("failed to delete completed session", "session", id, "error", deleteErr)
			}
			return session, err
		}
		return nil, err
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

// RestartWordGame abandons the current play-through and deals a fresh word
// list from the same category under the same session id.
func (that *sessionService) RestartWordGame(ctx context.Context, id string) (*repository.Session, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeWord)
	if err != nil {
		return nil, err
	}

	category, err := that.catalogRepo.GetCategoryByID(ctx, session.WordGuess.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	words, err := that.catalogRepo.GetRandomWordsByCategoryID(ctx, category.ID, session.WordGuess.MaxWords)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve words: %w", err)
	}

	session.WordGuess = wordguess.NewSession(category, words)
	session.StartedAt = that.now().Unix()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *sessionService) StartMemoryGame(ctx context.Context, categoryID, difficulty, cardCount int) (*repository.Session, error) {
	category, err := that.catalogRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	if !category.IsMemoryGame() {
		return nil, apperror.ErrWrongGameType
	}

	if difficulty < 1 || difficulty > 3 {
		difficulty = 1
	}

	pairs := cardCount / 2
	if pairs <= 0 {
		pairs = pairsFor(difficulty)
	}

	values, err := that.catalogRepo.GetRandomCardValues(ctx, categoryID, difficulty, pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cards: %w", err)
	}

	session := &repository.Session{
		ID:        uuid.NewString(),
		Kind:      entity.GameTypeMemory,
		StartedAt: that.now().Unix(),
		Memory:    memorymatch.NewSession(category, values, difficulty),
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (that *sessionService) FlipCard(ctx context.Context, id string, cardID int) (*repository.Session, *memorymatch.FlipResult, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeMemory)
	if err != nil {
		return nil, nil, err
	}

	session.Memory.ApplyElapsed(that.elapsed(session))

	// replaying the clock may end the round on its own
	if !session.Memory.IsPlaying() {
		if deleteErr := that.sessionRepo.DeleteByID(ctx, id); deleteErr != nil {
			that.logger.Warn("failed to delete finished session", "session", id, "error", deleteErr)
		}
		return session, nil, nil
	}

	result, err := session.Memory.Flip(cardID)
	if err != nil {
		return nil, nil, err
	}

	if session.Memory.IsWon() {
		if recordErr := that.scores.RecordMemoryWin(ctx, session.Memory); recordErr != nil {
			that.logger.Warn("failed to record memory win", "session", id, "error", recordErr)
		}
	}

	if !session.Memory.IsPlaying() {
		if deleteErr := that.sessionRepo.DeleteByID(ctx, id); deleteErr != nil {
			that.logger.Warn("failed to delete finished session", "session", id, "error", deleteErr)
		}
		return session, result, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, result, nil
}

func (that *sessionService) RestartMemoryGame(ctx context.Context, id string) (*repository.Session, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeMemory)
	if err != nil {
		return nil, err
	}

	category, err := that.catalogRepo.GetCategoryByID(ctx, session.Memory.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	difficulty := session.Memory.Difficulty
	values, err := that.catalogRepo.GetRandomCardValues(ctx, category.ID, difficulty, session.Memory.Pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cards: %w", err)
	}

	session.Memory = memorymatch.NewSession(category, values, difficulty)
	session.StartedAt = that.now().Unix()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *sessionService) StartSequenceGame(ctx context.Context, categoryID int) (*repository.Session, error) {
	category, err := that.catalogRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	if !category.IsNumberGame() {
		return nil, apperror.ErrWrongGameType
	}

	session := &repository.Session{
		ID:        uuid.NewString(),
		Kind:      entity.GameTypeNumber,
		StartedAt: that.now().Unix(),
		Sequence:  sequence.NewSession(category),
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (that *sessionService) SubmitAnswer(ctx context.Context, id, answer string) (*repository.Session, *sequence.SubmitResult, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeNumber)
	if err != nil {
		return nil, nil, err
	}

	result, err := session.Sequence.SubmitAnswer(answer)
	if err != nil {
		return nil, nil, err
	}

	if !session.Sequence.IsPlaying() {
		if recordErr := that.scores.RecordSequenceResult(ctx, session.Sequence); recordErr != nil {
			that.logger.Warn("failed to record sequence result", "session", id, "error", recordErr)
		}

		if deleteErr := that.sessionRepo.DeleteByID(ctx, id); deleteErr != nil {
			that.logger.Warn("failed to delete finished session", "session", id, "error", deleteErr)
		}
		return session, result, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, result, nil
}

func (that *sessionService) ToggleSequenceHint(ctx context.Context, id string) (*repository.Session, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeNumber)
	if err != nil {
		return nil, err
	}

	if err = session.Sequence.ToggleHint(); err != nil {
		return nil, err
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *sessionService) RestartSequenceGame(ctx context.Context, id string) (*repository.Session, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeNumber)
	if err != nil {
		return nil, err
	}

	session.Sequence.Restart()
	session.StartedAt = that.now().Unix()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *sessionService) StartCrosswordGame(ctx context.Context, categoryID int) (*repository.Session, error) {
	category, err := that.catalogRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	if !category.IsCrosswordGame() {
		return nil, apperror.ErrWrongGameType
	}

	session := &repository.Session{
		ID:        uuid.NewString(),
		Kind:      entity.GameTypeCrossword,
		StartedAt: that.now().Unix(),
		Crossword: crossword.NewSession(category),
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (that *sessionService) SelectCell(ctx context.Context, id string, row, col int) (*repository.Session, error) {
	return that.crosswordMove(ctx, id, func(session *crossword.Session) error {
		return session.SelectCell(row, col)
	})
}

func (that *sessionService) InputLetter(ctx context.Context, id string, row, col int, letter string) (*repository.Session, error) {
	return that.crosswordMove(ctx, id, func(session *crossword.Session) error {
		return session.InputLetter(row, col, letter)
	})
}

func (that *sessionService) UseCrosswordHint(ctx context.Context, id string) (*repository.Session, error) {
	return that.crosswordMove(ctx, id, func(session *crossword.Session) error {
		return session.UseHint()
	})
}

func (that *sessionService) ToggleDirection(ctx context.Context, id string) (*repository.Session, error) {
	return that.crosswordMove(ctx, id, func(session *crossword.Session) error {
		return session.ToggleDirection()
	})
}

func (that *sessionService) MoveCursor(ctx context.Context, id, key string) (*repository.Session, error) {
	return that.crosswordMove(ctx, id, func(session *crossword.Session) error {
		return session.MoveCursor(key)
	})
}

func (that *sessionService) RestartCrosswordGame(ctx context.Context, id string) (*repository.Session, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeCrossword)
	if err != nil {
		return nil, err
	}

	session.Crossword.Restart()
	session.StartedAt = that.now().Unix()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

// crosswordMove wraps one crossword mutation: wall-clock time is replayed
// into the countdown first, a won round settles into the score record, and a
// finished round is removed from storage.
func (that *sessionService) crosswordMove(ctx context.Context, id string, move func(*crossword.Session) error) (*repository.Session, error) {
	session, err := that.getByKind(ctx, id, entity.GameTypeCrossword)
	if err != nil {
		return nil, err
	}

	session.Crossword.ApplyElapsed(that.elapsed(session))

	// replaying the clock may end the round on its own
	if !session.Crossword.IsPlaying() {
		if deleteErr := that.sessionRepo.DeleteByID(ctx, id); deleteErr != nil {
			that.logger.Warn("failed to delete finished session", "session", id, "error", deleteErr)
		}
		return session, nil
	}

	if err = move(session.Crossword); err != nil {
		return nil, err
	}

	if session.Crossword.IsWon() {
		if recordErr := that.scores.RecordCrosswordWin(ctx, session.Crossword); recordErr != nil {
			that.logger.Warn("failed to record crossword win", "session", id, "error", recordErr)
		}
	}

	if !session.Crossword.IsPlaying() {
		if deleteErr := that.sessionRepo.DeleteByID(ctx, id); deleteErr != nil {
			that.logger.Warn("failed to delete finished session", "session", id, "error", deleteErr)
		}
		return session, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *sessionService) settleWordWin(ctx context.Context, session *wordguess.Session) {
	if err := that.scores.RecordWordWin(ctx, session); err != nil {
		that.logger.Warn("failed to record word win", "category", session.CategoryID, "error", err)
	}
}

func (that *sessionService) getByKind(ctx context.Context, id, kind string) (*repository.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to retrieve session from storage: %w", err)
	}

	if session.Kind != kind {
		return nil, apperror.ErrWrongGameType
	}

	return session, nil
}

// elapsed converts the session's wall-clock age into whole seconds for the
// countdown engines.
func (that *sessionService) elapsed(session *repository.Session) int {
	return int(that.now().Unix() - session.StartedAt)
}
