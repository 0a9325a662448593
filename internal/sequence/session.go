package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

const (
	StatusPlaying = "playing"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

const StartingLives = 3

// Session holds the state of one number-sequence quiz run over the static
// level list. CurrentLevel is a monotonically increasing counter; the active
// level is levels[CurrentLevel mod len(levels)].
type Session struct {
	CurrentCategory string `json:"currentCategory"`
	CategoryID      int    `json:"categoryId"`
	CurrentLevel    int    `json:"currentLevel"`
	Score           int    `json:"score"`
	Lives           int    `json:"lives"`
	ShowHint        bool   `json:"showHint"`
	HintUsed        bool   `json:"hintUsed"`
	Feedback        string `json:"feedbackMessage,omitempty"`
	GameStatus      string `json:"gameStatus"`
}

// SubmitResult reports one answer attempt.
type SubmitResult struct {
	Correct  bool   `json:"correct"`
	Points   int    `json:"points"`
	Feedback string `json:"feedback"`
}

func NewSession(category *entity.Category) *Session {
	return &Session{
		CurrentCategory: category.Name,
		CategoryID:      category.ID,
		Lives:           StartingLives,
		GameStatus:      StatusPlaying,
	}
}

// Level returns the active level.
func (that *Session) Level() Level {
	return levels[that.CurrentLevel%len(levels)]
}

// SubmitAnswer checks one answer. A correct answer is worth difficulty*10
// points, halved (floor) if the hint was shown at any point this level, and
// advances the level; solving the last level ends the run as a success. A
// wrong answer costs a life and keeps the level for a retry; losing the last
// life ends the run as a failure.
func (that *Session) SubmitAnswer(raw string) (*SubmitResult, error) {
	if that.GameStatus != StatusPlaying {
		return nil, apperror.ErrRoundFinished
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, apperror.ErrInvalidAnswer
	}

	level := that.Level()

	if value != level.Answer {
		that.Lives--
		that.Feedback = "Incorrect answer, try again"
		if that.Lives <= 0 {
			that.GameStatus = StatusFailure
		}

		return &SubmitResult{Feedback: that.Feedback}, nil
	}

	points := level.Difficulty * 10
	if that.HintUsed {
		points /= 2
	}

	that.Score += points
	that.Feedback = fmt.Sprintf("Correct! +%d points", points)

	lastLevel := that.CurrentLevel == len(levels)-1
	that.CurrentLevel++
	that.ShowHint = false
	that.HintUsed = false

	if lastLevel {
		that.GameStatus = StatusSuccess
	}

	return &SubmitResult{Correct: true, Points: points, Feedback: that.Feedback}, nil
}

// ToggleHint flips the pattern display. Once shown, the point halving sticks
// for this level even if the hint is hidden again.
func (that *Session) ToggleHint() error {
	if that.GameStatus != StatusPlaying {
		return apperror.ErrRoundFinished
	}

	that.ShowHint = !that.ShowHint
	if that.ShowHint {
		that.HintUsed = true
	}

	return nil
}

// Restart resets the run to level 0 with full lives.
func (that *Session) Restart() {
	that.CurrentLevel = 0
	that.Score = 0
	that.Lives = StartingLives
	that.ShowHint = false
	that.HintUsed = false
	that.Feedback = ""
	that.GameStatus = StatusPlaying
}

func (that *Session) IsPlaying() bool {
	return that.GameStatus == StatusPlaying
}

func (that *Session) IsSuccess() bool {
	return that.GameStatus == StatusSuccess
}

func (that *Session) IsFailure() bool {
	return that.GameStatus == StatusFailure
}
