package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

const userScoreKey = "score:user"

// ScoreRepository persists the singleton user score record.
type ScoreRepository interface {
	Get(ctx context.Context) (*entity.UserScore, error)
	Save(ctx context.Context, score *entity.UserScore) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

// Get returns the stored record, or the seeded default when nothing has been
// saved yet.
func (that *dbScore) Get(ctx context.Context) (*entity.UserScore, error) {
	response, err := that.client.Get(ctx, userScoreKey).Result()

	if errors.Is(err, redis.Nil) {
		return entity.NewUserScore(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	var score entity.UserScore
	if err = json.Unmarshal([]byte(response), &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &score, nil
}

func (that *dbScore) Save(ctx context.Context, score *entity.UserScore) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	if err = that.client.Set(ctx, userScoreKey, scoreJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}
