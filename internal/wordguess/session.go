package wordguess

import (
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

const (
	StatusIdle    = "idle"
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

const (
	// MaxIncorrectGuesses - the classic hangman figure has six parts.
	MaxIncorrectGuesses = 6
	StartingHints       = 3

	basePoints       = 10
	hintGuessPenalty = 5
	hintUsePenalty   = 5
)

// Session holds the state of one word-guessing play-through: an ordered word
// list for the category plus the per-word guess fields.
type Session struct {
	CurrentCategory  string        `json:"currentCategory"`
	CategoryID       int           `json:"categoryId"`
	Words            []entity.Word `json:"words"`
	CurrentWordIndex int           `json:"currentWordIndex"`
	MaxWords         int           `json:"maxWords"`
	GuessedLetters   []string      `json:"guessedLetters"`
	IncorrectGuesses int           `json:"incorrectGuesses"`
	RemainingHints   int           `json:"remainingHints"`
	RevealedHints    int           `json:"revealedHints"`
	Score            int           `json:"score"`
	TotalScore       int           `json:"totalScore"`
	WordsSolved      int           `json:"wordsSolved"`
	GameStatus       string        `json:"gameStatus"`
}

// NewSession starts a round over the given word list.
func NewSession(category *entity.Category, words []entity.Word) *Session {
	return &Session{
		CurrentCategory: category.Name,
		CategoryID:      category.ID,
		Words:           words,
		MaxWords:        len(words),
		GuessedLetters:  []string{},
		RemainingHints:  StartingHints,
		GameStatus:      StatusPlaying,
	}
}

// CurrentWord returns the word in play, or "" past the end of the list.
func (that *Session) CurrentWord() string {
	if that.CurrentWordIndex >= len(that.Words) {
		return ""
	}
	return that.Words[that.CurrentWordIndex].Word
}

// CurrentHints returns the hint clues of the word in play.
func (that *Session) CurrentHints() []string {
	if that.CurrentWordIndex >= len(that.Words) {
		return nil
	}
	return that.Words[that.CurrentWordIndex].Hints
}

// CurrentHint returns the clue unlocked by the latest revealed hint.
func (that *Session) CurrentHint() string {
	hints := that.CurrentHints()
	if that.RevealedHints >= len(hints) {
		return ""
	}
	return hints[that.RevealedHints]
}

// GuessLetter applies one letter guess. A correct guess is worth
// 10 - 5*revealedHints points; an incorrect one costs a body part. The
// terminal condition is evaluated synchronously in the same transition.
// Returns whether the guess was correct.
func (that *Session) GuessLetter(letter string) (bool, error) {
	if that.GameStatus != StatusPlaying {
		return false, apperror.ErrRoundFinished
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return false, apperror.ErrInvalidLetter
	}

	if that.isGuessed(letter) {
		return false, apperror.ErrLetterAlreadyGuessed
	}

	word := that.CurrentWord()
	that.GuessedLetters = append(that.GuessedLetters, letter)

	correct := strings.Contains(word, letter)
	if correct {
		that.Score += basePoints - that.RevealedHints*hintGuessPenalty
	} else {
		that.IncorrectGuesses++
	}

	switch {
	case that.isWordComplete():
		that.completeWord()
	case that.IncorrectGuesses >= MaxIncorrectGuesses:
		that.GameStatus = StatusLost
	}

	return correct, nil
}

// UseHint reveals a uniformly random unguessed letter of the current word,
// unlocks the next clue and costs 5 points (floored at 0).
// Returns the revealed letter.
func (that *Session) UseHint() (string, error) {
	if that.GameStatus != StatusPlaying {
		return "", apperror.ErrRoundFinished
	}

	if that.RemainingHints <= 0 {
		return "", apperror.ErrNoHintsLeft
	}

	unguessed := that.unguessedLetters()
	if len(unguessed) == 0 {
		return "", nil
	}

	letter := unguessed[rand.Intn(len(unguessed))] //nolint:gosec // not a secret

	that.GuessedLetters = append(that.GuessedLetters, letter)
	that.RemainingHints--

	if maxRevealed := len(that.CurrentHints()) - 1; that.RevealedHints < maxRevealed {
		that.RevealedHints++
	}

	that.Score -= hintUsePenalty
	if that.Score < 0 {
		that.Score = 0
	}

	if that.isWordComplete() {
		that.completeWord()
	}

	return letter, nil
}

// NextWord advances to the next word and resets the per-word fields. Past the
// last word it reports ErrSessionComplete.
func (that *Session) NextWord() error {
	next := that.CurrentWordIndex + 1
	if next >= that.MaxWords {
		return apperror.ErrSessionComplete
	}

	that.CurrentWordIndex = next
	that.GuessedLetters = []string{}
	that.IncorrectGuesses = 0
	that.RemainingHints = StartingHints
	that.RevealedHints = 0
	that.Score = 0
	that.GameStatus = StatusPlaying

	return nil
}

func (that *Session) IsPlaying() bool {
	return that.GameStatus == StatusPlaying
}

func (that *Session) IsWon() bool {
	return that.GameStatus == StatusWon
}

func (that *Session) IsLost() bool {
	return that.GameStatus == StatusLost
}

func (that *Session) completeWord() {
	that.WordsSolved++
	that.TotalScore += that.Score
	that.GameStatus = StatusWon
}

// isWordComplete reports whether every distinct letter of the current word
// has been guessed.
func (that *Session) isWordComplete() bool {
	word := that.CurrentWord()
	if word == "" {
		return false
	}

	for _, letter := range strings.Split(word, "") {
		if !that.isGuessed(letter) {
			return false
		}
	}

	return true
}

func (that *Session) isGuessed(letter string) bool {
	for _, guessed := range that.GuessedLetters {
		if guessed == letter {
			return true
		}
	}
	return false
}

func (that *Session) unguessedLetters() []string {
	var letters []string

	seen := map[string]bool{}
	for _, letter := range strings.Split(that.CurrentWord(), "") {
		if !seen[letter] && !that.isGuessed(letter) {
			seen[letter] = true
			letters = append(letters, letter)
		}
	}

	return letters
}
