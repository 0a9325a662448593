package entity

import "time"

// RoundResult is one finished round, appended to the archive on every
// terminal transition.
type RoundResult struct {
	GameType   string    `json:"gameType"`
	CategoryID int       `json:"categoryId"`
	Score      int       `json:"score"`
	Won        bool      `json:"won"`
	FinishedAt time.Time `json:"finishedAt"`
}
