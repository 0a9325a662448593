package apperror

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoWordsFound     = errors.New("no words found for this category")
	ErrNoCardsFound     = errors.New("no cards found for this category")
	ErrWrongGameType    = errors.New("category does not route to this game")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionComplete = errors.New("session is complete")

	ErrRoundFinished        = errors.New("round is already finished")
	ErrLetterAlreadyGuessed = errors.New("letter is already guessed")
	ErrNoHintsLeft          = errors.New("no hints left")
	ErrNoCellSelected       = errors.New("no cell selected")
	ErrCellBlocked          = errors.New("cell is blocked")
	ErrCardUnavailable      = errors.New("card is not available to flip")

	ErrInvalidAnswer = errors.New("please enter a valid number")
	ErrInvalidLetter = errors.New("invalid letter")
)
