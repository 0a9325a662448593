package crossword

// Directions a clue (and the cursor) can run in.
const (
	DirectionAcross = "across"
	DirectionDown   = "down"
)

// Clue is one pre-authored crossword entry. Row/Col is the starting cell.
type Clue struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Answer string `json:"answer"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Length int    `json:"length"`
	Solved bool   `json:"solved"`
}

// ClueSet holds the across and down clue lists of a puzzle.
type ClueSet struct {
	Across []Clue `json:"across"`
	Down   []Clue `json:"down"`
}

// Cell is one grid square. Number is 0 for cells no clue starts at.
type Cell struct {
	Letter     string `json:"letter"`
	IsBlack    bool   `json:"isBlack"`
	Number     int    `json:"number,omitempty"`
	Filled     bool   `json:"filled"`
	IsRevealed bool   `json:"isRevealed"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
}

const GridSize = 10

// The static starter puzzle. Crossing cells agree letter for letter, so the
// grid is fully solvable.
var samplePuzzle = ClueSet{
	Across: []Clue{
		{Number: 1, Clue: "Round of play", Answer: "GAME", Row: 0, Col: 0, Length: 4},
		{Number: 3, Clue: "Small screen symbol", Answer: "ICON", Row: 2, Col: 0, Length: 4},
		{Number: 5, Clue: "Brain teaser", Answer: "PUZZLE", Row: 5, Col: 2, Length: 6},
		{Number: 7, Clue: "Sound judgment", Answer: "SENSE", Row: 7, Col: 4, Length: 5},
		{Number: 8, Clue: "Engine", Answer: "MOTOR", Row: 8, Col: 5, Length: 5},
	},
	Down: []Clue{
		{Number: 1, Clue: "Manner of walking", Answer: "GAIT", Row: 0, Col: 0, Length: 4},
		{Number: 2, Clue: "Night light", Answer: "MOON", Row: 0, Col: 2, Length: 4},
		{Number: 4, Clue: "Labyrinths", Answer: "MAZES", Row: 3, Col: 4, Length: 5},
		{Number: 6, Clue: "Sunrise direction", Answer: "EAST", Row: 5, Col: 7, Length: 4},
	},
}

// newClueSet deep-copies the static puzzle so each session owns its solved
// flags.
func newClueSet() ClueSet {
	clues := ClueSet{
		Across: make([]Clue, len(samplePuzzle.Across)),
		Down:   make([]Clue, len(samplePuzzle.Down)),
	}
	copy(clues.Across, samplePuzzle.Across)
	copy(clues.Down, samplePuzzle.Down)
	return clues
}

// buildGrid derives the black/white layout and cell numbers from the clue
// spans: every covered cell is open, every clue's starting cell carries its
// number (shared when an across and a down clue start together).
func buildGrid(clues ClueSet) [][]Cell {
	grid := make([][]Cell, GridSize)
	for row := range grid {
		grid[row] = make([]Cell, GridSize)
		for col := range grid[row] {
			grid[row][col] = Cell{IsBlack: true, Row: row, Col: col}
		}
	}

	for _, clue := range clues.Across {
		for i := 0; i < clue.Length; i++ {
			if col := clue.Col + i; col < GridSize {
				grid[clue.Row][col].IsBlack = false
			}
		}
	}
	for _, clue := range clues.Down {
		for i := 0; i < clue.Length; i++ {
			if row := clue.Row + i; row < GridSize {
				grid[row][clue.Col].IsBlack = false
			}
		}
	}

	for _, clue := range append(append([]Clue{}, clues.Across...), clues.Down...) {
		if grid[clue.Row][clue.Col].Number == 0 {
			grid[clue.Row][clue.Col].Number = clue.Number
		}
	}

	return grid
}
