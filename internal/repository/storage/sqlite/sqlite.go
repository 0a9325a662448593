package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

type Storage struct {
	Connection *sql.DB
}

func New(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS round_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_type TEXT NOT NULL,
		category_id INTEGER NOT NULL,
		score INTEGER NOT NULL,
		won INTEGER NOT NULL,
		finished_at TEXT NOT NULL
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

// InsertRoundResult appends one finished round to the archive.
func (that *Storage) InsertRoundResult(ctx context.Context, result *entity.RoundResult) error {
	query := `INSERT INTO round_results (game_type, category_id, score, won, finished_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.Connection.ExecContext(ctx, query,
		result.GameType, result.CategoryID, result.Score, result.Won,
		result.FinishedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("can't insert round result: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
