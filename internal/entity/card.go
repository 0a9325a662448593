package entity

// MemoryCard is a seed card value for the memory-match game. Seed cards hold
// one distinct glyph each; duplication into pairs happens at session start.
type MemoryCard struct {
	ID         int    `json:"id"`
	Value      string `json:"value"`
	CategoryID int    `json:"categoryId"`
	Difficulty int    `json:"difficulty"`
}
