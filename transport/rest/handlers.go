package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/repository"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/service"
)

type Handlers interface {
	Health(w http.ResponseWriter, r *http.Request)

	ListCategories(w http.ResponseWriter, r *http.Request)
	GetCategory(w http.ResponseWriter, r *http.Request)
	GetCategoryWords(w http.ResponseWriter, r *http.Request)

	GetScores(w http.ResponseWriter, r *http.Request)
	ReplaceScores(w http.ResponseWriter, r *http.Request)
	PatchScores(w http.ResponseWriter, r *http.Request)

	StartWordGame(w http.ResponseWriter, r *http.Request)
	GuessLetter(w http.ResponseWriter, r *http.Request)
	UseWordHint(w http.ResponseWriter, r *http.Request)
	NextWord(w http.ResponseWriter, r *http.Request)
	RestartWordGame(w http.ResponseWriter, r *http.Request)

	StartMemoryGame(w http.ResponseWriter, r *http.Request)
	FlipCard(w http.ResponseWriter, r *http.Request)
	RestartMemoryGame(w http.ResponseWriter, r *http.Request)

	StartSequenceGame(w http.ResponseWriter, r *http.Request)
	SubmitAnswer(w http.ResponseWriter, r *http.Request)
	ToggleSequenceHint(w http.ResponseWriter, r *http.Request)
	RestartSequenceGame(w http.ResponseWriter, r *http.Request)

	StartCrosswordGame(w http.ResponseWriter, r *http.Request)
	SelectCell(w http.ResponseWriter, r *http.Request)
	InputLetter(w http.ResponseWriter, r *http.Request)
	UseCrosswordHint(w http.ResponseWriter, r *http.Request)
	ToggleDirection(w http.ResponseWriter, r *http.Request)
	MoveCursor(w http.ResponseWriter, r *http.Request)
	RestartCrosswordGame(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger   *slog.Logger
	catalog  service.CatalogService
	scores   service.ScoreService
	sessions service.SessionService
}

func NewHandlers(logger *slog.Logger, catalog service.CatalogService, scores service.ScoreService, sessions service.SessionService) Handlers {
	return &handlers{
		logger:   logger,
		catalog:  catalog,
		scores:   scores,
		sessions: sessions,
	}
}

// sessionPayload is the common envelope around one engine state.
type sessionPayload struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Game any    `json:"game"`
}

func payloadFrom(session *repository.Session) sessionPayload {
	payload := sessionPayload{ID: session.ID, Kind: session.Kind}

	switch session.Kind {
	case entity.GameTypeWord:
		payload.Game = session.WordGuess
	case entity.GameTypeMemory:
		payload.Game = session.Memory
	case entity.GameTypeNumber:
		payload.Game = session.Sequence
	case entity.GameTypeCrossword:
		payload.Game = session.Crossword
	}

	return payload
}

func (that *handlers) Health(w http.ResponseWriter, _ *http.Request) {
	that.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (that *handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := that.catalog.AllCategories(r.Context())
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, categories)
}

func (that *handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		that.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid id parameter"})
		return
	}

	category, err := that.catalog.GetCategoryByID(r.Context(), id)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, category)
}

func (that *handlers) GetCategoryWords(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		that.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid id parameter"})
		return
	}

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil {
			that.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid count parameter"})
			return
		}
	}

	words, err := that.catalog.GetCategoryWords(r.Context(), id, count)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, words)
}

func (that *handlers) GetScores(w http.ResponseWriter, r *http.Request) {
	score, err := that.scores.Get(r.Context())
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, score)
}

func (that *handlers) ReplaceScores(w http.ResponseWriter, r *http.Request) {
	var score entity.UserScore
	if !that.decode(w, r, &score) {
		return
	}

	updated, err := that.scores.Replace(r.Context(), &score)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, updated)
}

func (that *handlers) PatchScores(w http.ResponseWriter, r *http.Request) {
	var patch entity.ScorePatch
	if !that.decode(w, r, &patch) {
		return
	}

	updated, err := that.scores.Patch(r.Context(), &patch)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, updated)
}

type startWordGameRequest struct {
	CategoryID int `json:"categoryId"`
	WordCount  int `json:"wordCount"`
}

func (that *handlers) StartWordGame(w http.ResponseWriter, r *http.Request) {
	var req startWordGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, err := that.sessions.StartWordGame(r.Context(), req.CategoryID, req.WordCount)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusCreated, payloadFrom(session))
}

type guessLetterRequest struct {
	Letter string `json:"letter"`
}

type guessLetterResponse struct {
	sessionPayload
	Correct bool `json:"correct"`
}

func (that *handlers) GuessLetter(w http.ResponseWriter, r *http.Request) {
	var req guessLetterRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, correct, err := that.sessions.GuessLetter(r.Context(), chi.URLParam(r, "id"), req.Letter)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, guessLetterResponse{
		sessionPayload: payloadFrom(session),
		Correct:        correct,
	})
}

type wordHintResponse struct {
	sessionPayload
	Letter string `json:"letter"`
}

func (that *handlers) UseWordHint(w http.ResponseWriter, r *http.Request) {
	session, letter, err := that.sessions.UseWordHint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, wordHintResponse{
		sessionPayload: payloadFrom(session),
		Letter:         letter,
	})
}

type nextWordResponse struct {
	sessionPayload
	Complete bool `json:"complete"`
}

// NextWord deals the next word. Advancing past the last word reports the
// completed play-through instead of an error.
func (that *handlers) NextWord(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.NextWord(r.Context(), chi.URLParam(r, "id"))
	if err != nil && !errors.Is(err, apperror.ErrSessionComplete) {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, nextWordResponse{
		sessionPayload: payloadFrom(session),
		Complete:       errors.Is(err, apperror.ErrSessionComplete),
	})
}

func (that *handlers) RestartWordGame(w http.ResponseWriter, r *http.Request) {
	that.respondSession(w, r, that.sessions.RestartWordGame)
}

type startMemoryGameRequest struct {
	CategoryID int `json:"categoryId"`
	Difficulty int `json:"difficulty"`
	CardCount  int `json:"cardCount"`
}

func (that *handlers) StartMemoryGame(w http.ResponseWriter, r *http.Request) {
	var req startMemoryGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, err := that.sessions.StartMemoryGame(r.Context(), req.CategoryID, req.Difficulty, req.CardCount)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusCreated, payloadFrom(session))
}

type flipCardRequest struct {
	CardID int `json:"cardId"`
}

type flipCardResponse struct {
	sessionPayload
	Result any `json:"result,omitempty"`
}

func (that *handlers) FlipCard(w http.ResponseWriter, r *http.Request) {
	var req flipCardRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, result, err := that.sessions.FlipCard(r.Context(), chi.URLParam(r, "id"), req.CardID)
	if err != nil {
		that.respondError(w, err)
		return
	}

	response := flipCardResponse{sessionPayload: payloadFrom(session)}
	if result != nil {
		response.Result = result
	}

	that.respondJSON(w, http.StatusOK, response)
}

func (that *handlers) RestartMemoryGame(w http.ResponseWriter, r *http.Request) {
	that.respondSession(w, r, that.sessions.RestartMemoryGame)
}

type startSequenceGameRequest struct {
	CategoryID int `json:"categoryId"`
}

func (that *handlers) StartSequenceGame(w http.ResponseWriter, r *http.Request) {
	var req startSequenceGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, err := that.sessions.StartSequenceGame(r.Context(), req.CategoryID)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusCreated, payloadFrom(session))
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

type submitAnswerResponse struct {
	sessionPayload
	Result any `json:"result"`
}

func (that *handlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, result, err := that.sessions.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), req.Answer)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, submitAnswerResponse{
		sessionPayload: payloadFrom(session),
		Result:         result,
	})
}

func (that *handlers) ToggleSequenceHint(w http.ResponseWriter, r *http.Request) {
	that.respondSession(w, r, that.sessions.ToggleSequenceHint)
}

func (that *handlers) RestartSequenceGame(w http.ResponseWriter, r *http.Request) {
	that.respondSession(w, r, that.sessions.RestartSequenceGame)
}

type startCrosswordGameRequest struct {
	CategoryID int `json:"categoryId"`
}

func (that *handlers) StartCrosswordGame(w http.ResponseWriter, r *http.Request) {
	var req startCrosswordGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, err := that.sessions.StartCrosswordGame(r.Context(), req.CategoryID)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusCreated, payloadFrom(session))
}

type selectCellRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that *handlers) SelectCell(w http.ResponseWriter, r *http.Request) {
	var req selectCellRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, err := that.sessions.SelectCell(r.Context(), chi.URLParam(r, "id"), req.Row, req.Col)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, payloadFrom(session))
}

type inputLetterRequest struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

func (that *handlers) InputLetter(w http.ResponseWriter, r *http.Request) {
	var req inputLetterRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, err := that.sessions.InputLetter(r.Context(), chi.URLParam(r, "id"), req.Row, req.Col, req.Letter)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, payloadFrom(session))
}

func (that *handlers) UseCrosswordHint(w http.ResponseWriter, r *http.Request) {
	that.respondSession(w, r, that.sessions.UseCrosswordHint)
}

func (that *handlers) ToggleDirection(w http.ResponseWriter, r *http.Request) {
	that.respondSession(w, r, that.sessions.ToggleDirection)
}

type moveCursorRequest struct {
	Key string `json:"key"`
}

func (that *handlers) MoveCursor(w http.ResponseWriter, r *http.Request) {
	var req moveCursorRequest
	if !that.decode(w, r, &req) {
		return
	}

	session, err := that.sessions.MoveCursor(r.Context(), chi.URLParam(r, "id"), req.Key)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, payloadFrom(session))
}

func (that *handlers) RestartCrosswordGame(w http.ResponseWriter, r *http.Request) {
	that.respondSession(w, r, that.sessions.RestartCrosswordGame)
}

// respondSession serves the body-less session operations.
func (that *handlers) respondSession(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (*repository.Session, error)) {
	session, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, payloadFrom(session))
}

func (that *handlers) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.respondJSON(w, status, errorResponse{Message: messageFor(err, status)})
}

// decode reads a JSON body; a malformed body is a 400 for the caller.
func (that *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		that.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return false
	}
	return true
}

func intURLParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}
