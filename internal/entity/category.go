package entity

// Game types a category can route to.
const (
	GameTypeWord      = "word"
	GameTypeMemory    = "memory"
	GameTypeNumber    = "number"
	GameTypeCrossword = "crossword"
)

// Category is a named puzzle theme. It is immutable seed data and selects
// which mini-game engine a session routes to.
type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	WordCount int    `json:"wordCount"`
	GameType  string `json:"gameType"`
}

func (that *Category) IsWordGame() bool {
	return that.GameType == GameTypeWord
}

func (that *Category) IsMemoryGame() bool {
	return that.GameType == GameTypeMemory
}

func (that *Category) IsNumberGame() bool {
	return that.GameType == GameTypeNumber
}

func (that *Category) IsCrosswordGame() bool {
	return that.GameType == GameTypeCrossword
}
