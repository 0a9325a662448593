package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
)

type errorResponse struct {
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP statuses: missing things are 404,
// rejected moves and bad input are 400, everything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrCategoryNotFound),
		errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperror.ErrNoWordsFound),
		errors.Is(err, apperror.ErrNoCardsFound),
		errors.Is(err, apperror.ErrWrongGameType),
		errors.Is(err, apperror.ErrSessionComplete),
		errors.Is(err, apperror.ErrRoundFinished),
		errors.Is(err, apperror.ErrLetterAlreadyGuessed),
		errors.Is(err, apperror.ErrNoHintsLeft),
		errors.Is(err, apperror.ErrNoCellSelected),
		errors.Is(err, apperror.ErrCellBlocked),
		errors.Is(err, apperror.ErrCardUnavailable),
		errors.Is(err, apperror.ErrInvalidAnswer),
		errors.Is(err, apperror.ErrInvalidLetter):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides internal details on 500s.
func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
