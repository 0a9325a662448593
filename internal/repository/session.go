package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/crossword"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/memorymatch"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/sequence"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/wordguess"
)

const sessionKeyPrefix = "session:"

// Session is the persisted envelope around one engine state. Exactly one of
// the engine fields is set, matching Kind. StartedAt anchors the countdown
// timers.
type Session struct {
	ID        string               `json:"id"`
	Kind      string               `json:"kind"`
	StartedAt int64                `json:"startedAt"`
	WordGuess *wordguess.Session   `json:"wordGuess,omitempty"`
	Memory    *memorymatch.Session `json:"memory,omitempty"`
	Sequence  *sequence.Session    `json:"sequence,omitempty"`
	Crossword *crossword.Session   `json:"crossword,omitempty"`
}

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSession struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &dbSession{
		client: client,
	}
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, session *Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	sessionKey := sessionKeyPrefix + session.ID
	if err = that.client.Set(ctx, sessionKey, sessionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, id string) (*Session, error) {
	sessionKey := sessionKeyPrefix + id

	response, err := that.client.Get(ctx, sessionKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session Session
	if err = json.Unmarshal([]byte(response), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, id string) error {
	sessionKey := sessionKeyPrefix + id

	if err := that.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
