package crossword

import (
	"strings"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusTimeUp  = "timeup"
)

const (
	StartingHints    = 3
	TimeLimitSeconds = 600

	completionPoints  = 1000
	hintFinePoints    = 50
	defaultDifficulty = 1
)

// ClueRef addresses the active clue by direction and number.
type ClueRef struct {
	Direction string `json:"direction"`
	Number    int    `json:"number"`
}

// Session holds the state of one crossword round. SelectedRow/Col is -1
// while no cell is selected.
type Session struct {
	CurrentCategory string   `json:"currentCategory"`
	CategoryID      int      `json:"categoryId"`
	Grid            [][]Cell `json:"grid"`
	Clues           ClueSet  `json:"clues"`
	CurrentClue     ClueRef  `json:"currentClue"`
	SelectedRow     int      `json:"selectedRow"`
	SelectedCol     int      `json:"selectedCol"`
	Score           int      `json:"score"`
	Hints           int      `json:"hints"`
	GameStatus      string   `json:"gameStatus"`
	TimeElapsed     int      `json:"timeElapsed"`
	TimeLimit       int      `json:"timeLimit"`
	Difficulty      int      `json:"difficulty"`
}

func NewSession(category *entity.Category) *Session {
	clues := newClueSet()

	return &Session{
		CurrentCategory: category.Name,
		CategoryID:      category.ID,
		Grid:            buildGrid(clues),
		Clues:           clues,
		CurrentClue:     ClueRef{Direction: DirectionAcross, Number: clues.Across[0].Number},
		SelectedRow:     -1,
		SelectedCol:     -1,
		Hints:           StartingHints,
		GameStatus:      StatusPlaying,
		TimeLimit:       TimeLimitSeconds,
		Difficulty:      defaultDifficulty,
	}
}

// SelectCell moves the cursor onto an open cell and picks the owning clue:
// the current direction wins on ambiguous cells, across is the default.
func (that *Session) SelectCell(row, col int) error {
	if that.GameStatus != StatusPlaying {
		return apperror.ErrRoundFinished
	}

	if !that.inBounds(row, col) || that.Grid[row][col].IsBlack {
		return apperror.ErrCellBlocked
	}

	that.SelectedRow = row
	that.SelectedCol = col

	if ref := that.findClueForCell(row, col); ref != nil {
		that.CurrentClue = *ref
	}

	return nil
}

// InputLetter writes a letter into a cell (or clears it when letter is
// empty), re-evaluates every clue and either finishes the round or advances
// the cursor along the current direction.
func (that *Session) InputLetter(row, col int, letter string) error {
	if that.GameStatus != StatusPlaying {
		return apperror.ErrRoundFinished
	}

	if !that.inBounds(row, col) || that.Grid[row][col].IsBlack {
		return apperror.ErrCellBlocked
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	if letter != "" && (len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z') {
		return apperror.ErrInvalidLetter
	}

	that.SelectedRow = row
	that.SelectedCol = col
	if ref := that.findClueForCell(row, col); ref != nil {
		that.CurrentClue = *ref
	}

	cell := &that.Grid[row][col]
	cell.Letter = letter
	cell.Filled = letter != ""

	that.refreshSolved()

	if that.allSolved() {
		that.finish()
		return nil
	}

	that.advanceCursor()
	return nil
}

// UseHint reveals the correct letter of the selected cell, taken from the
// active clue's answer at the cell's offset.
func (that *Session) UseHint() error {
	if that.GameStatus != StatusPlaying {
		return apperror.ErrRoundFinished
	}

	if that.Hints <= 0 {
		return apperror.ErrNoHintsLeft
	}

	if that.SelectedRow < 0 || that.SelectedCol < 0 {
		return apperror.ErrNoCellSelected
	}

	clue := that.activeClue()
	if clue == nil {
		return apperror.ErrNoCellSelected
	}

	offset := that.SelectedCol - clue.Col
	if that.CurrentClue.Direction == DirectionDown {
		offset = that.SelectedRow - clue.Row
	}
	if offset < 0 || offset >= len(clue.Answer) {
		return apperror.ErrNoCellSelected
	}

	cell := &that.Grid[that.SelectedRow][that.SelectedCol]
	cell.Letter = string(clue.Answer[offset])
	cell.Filled = true
	cell.IsRevealed = true
	that.Hints--

	that.refreshSolved()

	if that.allSolved() {
		that.finish()
		return nil
	}

	that.advanceCursor()
	return nil
}

// ToggleDirection flips the cursor between across and down.
func (that *Session) ToggleDirection() error {
	if that.GameStatus != StatusPlaying {
		return apperror.ErrRoundFinished
	}

	if that.CurrentClue.Direction == DirectionAcross {
		that.CurrentClue.Direction = DirectionDown
	} else {
		that.CurrentClue.Direction = DirectionAcross
	}

	return nil
}

// MoveCursor shifts the selection one open cell in the given arrow
// direction ("up", "down", "left", "right"), clamped at the grid bounds.
// A black target keeps the cursor in place.
func (that *Session) MoveCursor(key string) error {
	if that.GameStatus != StatusPlaying {
		return apperror.ErrRoundFinished
	}

	if that.SelectedRow < 0 || that.SelectedCol < 0 {
		return apperror.ErrNoCellSelected
	}

	row, col := that.SelectedRow, that.SelectedCol
	switch key {
	case "up":
		row = max(0, row-1)
	case "down":
		row = min(GridSize-1, row+1)
	case "left":
		col = max(0, col-1)
	case "right":
		col = min(GridSize-1, col+1)
	default:
		return apperror.ErrCellBlocked
	}

	if that.Grid[row][col].IsBlack {
		return nil
	}

	that.SelectedRow = row
	that.SelectedCol = col
	if ref := that.findClueForCell(row, col); ref != nil {
		that.CurrentClue = *ref
	}

	return nil
}

// ApplyElapsed records the absolute elapsed play time and freezes the grid
// once the limit is reached.
func (that *Session) ApplyElapsed(seconds int) {
	if that.GameStatus != StatusPlaying {
		return
	}

	if seconds > that.TimeLimit {
		seconds = that.TimeLimit
	}
	that.TimeElapsed = seconds

	if that.TimeElapsed >= that.TimeLimit {
		that.GameStatus = StatusTimeUp
	}
}

// Restart rebuilds a fresh copy of the static puzzle.
func (that *Session) Restart() {
	clues := newClueSet()

	that.Grid = buildGrid(clues)
	that.Clues = clues
	that.CurrentClue = ClueRef{Direction: DirectionAcross, Number: clues.Across[0].Number}
	that.SelectedRow = -1
	that.SelectedCol = -1
	that.Score = 0
	that.Hints = StartingHints
	that.GameStatus = StatusPlaying
	that.TimeElapsed = 0
}

func (that *Session) IsPlaying() bool {
	return that.GameStatus == StatusPlaying
}

func (that *Session) IsWon() bool {
	return that.GameStatus == StatusWon
}

// finish computes the completion score: base points plus the unused seconds,
// minus a fine per used hint.
func (that *Session) finish() {
	timeBonus := that.TimeLimit - that.TimeElapsed
	if timeBonus < 0 {
		timeBonus = 0
	}

	that.Score = completionPoints + timeBonus - (StartingHints-that.Hints)*hintFinePoints
	that.GameStatus = StatusWon
}

// findClueForCell returns the clue owning the cell. On cells covered by both
// directions the current direction is kept if it still applies.
func (that *Session) findClueForCell(row, col int) *ClueRef {
	var across, down *Clue

	for i := range that.Clues.Across {
		clue := &that.Clues.Across[i]
		if clue.Row == row && col >= clue.Col && col < clue.Col+clue.Length {
			across = clue
			break
		}
	}
	for i := range that.Clues.Down {
		clue := &that.Clues.Down[i]
		if clue.Col == col && row >= clue.Row && row < clue.Row+clue.Length {
			down = clue
			break
		}
	}

	switch {
	case across != nil && down != nil:
		if that.CurrentClue.Direction == DirectionDown {
			return &ClueRef{Direction: DirectionDown, Number: down.Number}
		}
		return &ClueRef{Direction: DirectionAcross, Number: across.Number}
	case across != nil:
		return &ClueRef{Direction: DirectionAcross, Number: across.Number}
	case down != nil:
		return &ClueRef{Direction: DirectionDown, Number: down.Number}
	default:
		return nil
	}
}

func (that *Session) activeClue() *Clue {
	list := that.Clues.Across
	if that.CurrentClue.Direction == DirectionDown {
		list = that.Clues.Down
	}

	for i := range list {
		if list[i].Number == that.CurrentClue.Number {
			return &list[i]
		}
	}
	return nil
}

// advanceCursor steps one cell along the current direction, stopping at the
// grid edge or a black cell.
func (that *Session) advanceCursor() {
	row, col := that.SelectedRow, that.SelectedCol
	if row < 0 || col < 0 {
		return
	}

	if that.CurrentClue.Direction == DirectionAcross {
		col++
	} else {
		row++
	}

	if that.inBounds(row, col) && !that.Grid[row][col].IsBlack {
		that.SelectedRow = row
		that.SelectedCol = col
	}
}

// refreshSolved recomputes every clue's solved flag by concatenating the
// letters along its span and comparing to the answer.
func (that *Session) refreshSolved() {
	for i := range that.Clues.Across {
		clue := &that.Clues.Across[i]

		var word strings.Builder
		for j := 0; j < clue.Length; j++ {
			if col := clue.Col + j; col < GridSize {
				word.WriteString(that.Grid[clue.Row][col].Letter)
			}
		}
		clue.Solved = word.String() == clue.Answer
	}

	for i := range that.Clues.Down {
		clue := &that.Clues.Down[i]

		var word strings.Builder
		for j := 0; j < clue.Length; j++ {
			if row := clue.Row + j; row < GridSize {
				word.WriteString(that.Grid[row][clue.Col].Letter)
			}
		}
		clue.Solved = word.String() == clue.Answer
	}
}

func (that *Session) allSolved() bool {
	for _, clue := range that.Clues.Across {
		if !clue.Solved {
			return false
		}
	}
	for _, clue := range that.Clues.Down {
		if !clue.Solved {
			return false
		}
	}
	return true
}

func (that *Session) inBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}
