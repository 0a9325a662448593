package memorymatch

import (
	"math/rand"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusTimeUp  = "timeup"
)

const (
	basePointsPerMatch = 10
	timeBonusDivisor   = 5
)

// Card is one playable card instance. Pairing is explicit: the two members of
// a pair carry fresh unique ids and a shared Value.
type Card struct {
	ID       int    `json:"id"`
	Value    string `json:"value"`
	Flipped  bool   `json:"flipped"`
	Matched  bool   `json:"matched"`
	Position int    `json:"position"`
}

// FlipResult reports the outcome of a flip. Resolved is true on the second
// card of a pair attempt; mismatched cards are already face down again when
// it is returned.
type FlipResult struct {
	Resolved       bool  `json:"resolved"`
	Matched        bool  `json:"matched"`
	PairIDs        []int `json:"pairIds,omitempty"`
	RemainingPairs int   `json:"remainingPairs"`
}

// Session holds the state of one memory-match round.
type Session struct {
	CurrentCategory string `json:"currentCategory"`
	CategoryID      int    `json:"categoryId"`
	Cards           []Card `json:"cards"`
	Difficulty      int    `json:"difficulty"`
	Moves           int    `json:"moves"`
	Pairs           int    `json:"pairs"`
	RemainingPairs  int    `json:"remainingPairs"`
	TimeElapsed     int    `json:"timeElapsed"`
	TimeLimit       int    `json:"timeLimit"`
	Score           int    `json:"score"`
	GameStatus      string `json:"gameStatus"`
	FlippedIDs      []int  `json:"flippedIds"`
}

// TimeLimitFor maps difficulty 1/2/3 to 120/90/60 seconds.
func TimeLimitFor(difficulty int) int {
	switch difficulty {
	case 2:
		return 90
	case 3:
		return 60
	default:
		return 120
	}
}

// NewSession duplicates each distinct value into a pair, shuffles the deck
// and assigns sequential positions.
func NewSession(category *entity.Category, values []string, difficulty int) *Session {
	cards := make([]Card, 0, len(values)*2)
	for _, value := range values {
		cards = append(cards,
			Card{ID: len(cards) + 1, Value: value},
			Card{ID: len(cards) + 2, Value: value},
		)
	}

	rand.Shuffle(len(cards), func(i, j int) { //nolint:gosec // not a secret
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].Position = i
	}

	return &Session{
		CurrentCategory: category.Name,
		CategoryID:      category.ID,
		Cards:           cards,
		Difficulty:      difficulty,
		Pairs:           len(values),
		RemainingPairs:  len(values),
		TimeLimit:       TimeLimitFor(difficulty),
		GameStatus:      StatusPlaying,
		FlippedIDs:      []int{},
	}
}

// Flip turns a card face up. The second flip of a pair attempt counts as a
// move and is resolved synchronously: a match locks both cards and scores
// 10*difficulty plus a time bonus, a mismatch turns both face down again.
func (that *Session) Flip(cardID int) (*FlipResult, error) {
	if that.GameStatus != StatusPlaying {
		return nil, apperror.ErrRoundFinished
	}

	card := that.findCard(cardID)
	if card == nil || card.Flipped || card.Matched || len(that.FlippedIDs) >= 2 {
		return nil, apperror.ErrCardUnavailable
	}

	card.Flipped = true
	that.FlippedIDs = append(that.FlippedIDs, cardID)

	if len(that.FlippedIDs) < 2 {
		return &FlipResult{RemainingPairs: that.RemainingPairs}, nil
	}

	return that.resolvePair(), nil
}

func (that *Session) resolvePair() *FlipResult {
	that.Moves++

	first := that.findCard(that.FlippedIDs[0])
	second := that.findCard(that.FlippedIDs[1])
	pairIDs := []int{first.ID, second.ID}
	that.FlippedIDs = []int{}

	if first.Value != second.Value {
		first.Flipped = false
		second.Flipped = false

		return &FlipResult{Resolved: true, PairIDs: pairIDs, RemainingPairs: that.RemainingPairs}
	}

	first.Matched = true
	second.Matched = true
	that.RemainingPairs--
	that.Score += basePointsPerMatch*that.Difficulty + that.TimeLeft()/timeBonusDivisor

	if that.RemainingPairs <= 0 {
		that.GameStatus = StatusWon
	}

	return &FlipResult{Resolved: true, Matched: true, PairIDs: pairIDs, RemainingPairs: that.RemainingPairs}
}

// ApplyElapsed records the absolute elapsed play time and fires the timeup
// transition once the limit is reached.
func (that *Session) ApplyElapsed(seconds int) {
	if that.GameStatus != StatusPlaying {
		return
	}

	if seconds > that.TimeLimit {
		seconds = that.TimeLimit
	}
	that.TimeElapsed = seconds

	if that.TimeElapsed >= that.TimeLimit {
		that.GameStatus = StatusTimeUp
	}
}

// TimeLeft returns the remaining countdown seconds.
func (that *Session) TimeLeft() int {
	left := that.TimeLimit - that.TimeElapsed
	if left < 0 {
		return 0
	}
	return left
}

func (that *Session) IsPlaying() bool {
	return that.GameStatus == StatusPlaying
}

func (that *Session) IsWon() bool {
	return that.GameStatus == StatusWon
}

func (that *Session) findCard(id int) *Card {
	for i := range that.Cards {
		if that.Cards[i].ID == id {
			return &that.Cards[i]
		}
	}
	return nil
}
