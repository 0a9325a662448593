package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/apperror"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/entity"
)

func newTestSession() *Session {
	category := &entity.Category{ID: 4, Name: "Crosswords", GameType: entity.GameTypeCrossword}
	return NewSession(category)
}

// fillClue types a clue's answer cell by cell, stopping early if the round
// finishes mid-word.
func fillClue(t *testing.T, session *Session, clue Clue, direction string) {
	t.Helper()

	for i := 0; i < clue.Length; i++ {
		if !session.IsPlaying() {
			return
		}

		row, col := clue.Row, clue.Col+i
		if direction == DirectionDown {
			row, col = clue.Row+i, clue.Col
		}

		require.NoError(t, session.InputLetter(row, col, string(clue.Answer[i])))
	}
}

func solveEverything(t *testing.T, session *Session) {
	t.Helper()

	for _, clue := range session.Clues.Across {
		fillClue(t, session, clue, DirectionAcross)
	}
	for _, clue := range session.Clues.Down {
		fillClue(t, session, clue, DirectionDown)
	}
}

func TestNewSession(t *testing.T) {
	t.Run("Grid layout and numbers are derived from the clue spans", func(t *testing.T) {
		// Given / When: a fresh session
		session := newTestSession()

		// Then: clue-covered cells are open and carry the starting numbers
		assert.False(t, session.Grid[0][0].IsBlack)
		assert.Equal(t, 1, session.Grid[0][0].Number, "shared across/down start keeps one number")
		assert.False(t, session.Grid[2][0].IsBlack)
		assert.Equal(t, 3, session.Grid[2][0].Number)

		// Then: uncovered cells stay black
		assert.True(t, session.Grid[9][0].IsBlack)
		assert.True(t, session.Grid[0][9].IsBlack)

		assert.Equal(t, StatusPlaying, session.GameStatus)
		assert.Equal(t, StartingHints, session.Hints)
		assert.Equal(t, TimeLimitSeconds, session.TimeLimit)
	})
}

func TestSession_SelectCell(t *testing.T) {
	t.Run("Ambiguous cell defaults to across and keeps the current direction", func(t *testing.T) {
		// Given: a session with (0,0) covered by across 1 and down 1
		session := newTestSession()

		// When: the cell is selected
		require.NoError(t, session.SelectCell(0, 0))

		// Then: across wins by default
		assert.Equal(t, ClueRef{Direction: DirectionAcross, Number: 1}, session.CurrentClue)

		// When: direction is toggled and the cell re-selected
		require.NoError(t, session.ToggleDirection())
		require.NoError(t, session.SelectCell(0, 0))

		// Then: the down direction is kept
		assert.Equal(t, ClueRef{Direction: DirectionDown, Number: 1}, session.CurrentClue)
	})

	t.Run("Black cells cannot be selected", func(t *testing.T) {
		session := newTestSession()

		err := session.SelectCell(9, 9)

		assert.ErrorIs(t, err, apperror.ErrCellBlocked)
		assert.Equal(t, -1, session.SelectedRow)
	})
}

func TestSession_InputLetter(t *testing.T) {
	t.Run("Filling an across answer marks only that clue solved", func(t *testing.T) {
		// Given: a fresh session
		session := newTestSession()

		// When: GAME is typed along row 0 (lowercase, to check normalization)
		require.NoError(t, session.SelectCell(0, 0))
		for i, letter := range []string{"g", "a", "m", "e"} {
			require.NoError(t, session.InputLetter(0, i, letter))
		}

		// Then: across 1 is solved, the crossing down clues are not
		assert.True(t, session.Clues.Across[0].Solved)
		assert.False(t, session.Clues.Down[0].Solved)
		assert.Equal(t, "G", session.Grid[0][0].Letter)
	})

	t.Run("Cursor auto-advances along the direction and stops at black cells", func(t *testing.T) {
		// Given: a session with (0,0) selected, direction across
		session := newTestSession()
		require.NoError(t, session.SelectCell(0, 0))

		// When: a letter is typed
		require.NoError(t, session.InputLetter(0, 0, "G"))

		// Then: the cursor moved right
		assert.Equal(t, 0, session.SelectedRow)
		assert.Equal(t, 1, session.SelectedCol)

		// When: the last open cell of the word is typed
		require.NoError(t, session.InputLetter(0, 3, "E"))

		// Then: the next cell is black, the cursor stays
		assert.Equal(t, 3, session.SelectedCol)
	})

	t.Run("Backspace clears a cell and unsolves the clue", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.SelectCell(0, 0))
		for i, letter := range []string{"G", "A", "M", "E"} {
			require.NoError(t, session.InputLetter(0, i, letter))
		}
		require.True(t, session.Clues.Across[0].Solved)

		// When: one letter is cleared
		require.NoError(t, session.InputLetter(0, 2, ""))

		// Then: the cell is empty and the clue no longer solved
		assert.False(t, session.Grid[0][2].Filled)
		assert.False(t, session.Clues.Across[0].Solved)
	})

	t.Run("Solving every clue wins with the full completion score", func(t *testing.T) {
		// Given: a fresh session
		session := newTestSession()

		// When: every across and down answer is filled
		solveEverything(t, session)

		// Then: the round is won, score = 1000 + full time bonus - no hint fine
		assert.Equal(t, StatusWon, session.GameStatus)
		assert.Equal(t, 1000+TimeLimitSeconds, session.Score)

		// Then: the grid is frozen
		err := session.InputLetter(0, 0, "X")
		assert.ErrorIs(t, err, apperror.ErrRoundFinished)
	})
}

func TestSession_UseHint(t *testing.T) {
	t.Run("A hint reveals the selected cell from the active clue", func(t *testing.T) {
		// Given: a session with (0,0) selected (across 1, GAME)
		session := newTestSession()
		require.NoError(t, session.SelectCell(0, 0))

		// When: a hint is used
		require.NoError(t, session.UseHint())

		// Then: the letter is written, marked revealed, and the cursor advanced
		assert.Equal(t, "G", session.Grid[0][0].Letter)
		assert.True(t, session.Grid[0][0].IsRevealed)
		assert.Equal(t, StartingHints-1, session.Hints)
		assert.Equal(t, 1, session.SelectedCol)
	})

	t.Run("Hints require a selection and a remaining budget", func(t *testing.T) {
		session := newTestSession()

		// When: no cell is selected
		err := session.UseHint()
		// Then: the hint is rejected
		assert.ErrorIs(t, err, apperror.ErrNoCellSelected)

		// When: the budget is exhausted
		require.NoError(t, session.SelectCell(0, 0))
		for i := 0; i < StartingHints; i++ {
			require.NoError(t, session.UseHint())
		}
		err = session.UseHint()
		// Then: the hint is rejected
		assert.ErrorIs(t, err, apperror.ErrNoHintsLeft)
	})

	t.Run("Used hints reduce the completion score", func(t *testing.T) {
		// Given: a session where one hint was used
		session := newTestSession()
		require.NoError(t, session.SelectCell(0, 0))
		require.NoError(t, session.UseHint())

		// When: the puzzle is completed
		solveEverything(t, session)

		// Then: the score carries one 50 point fine
		assert.Equal(t, StatusWon, session.GameStatus)
		assert.Equal(t, 1000+TimeLimitSeconds-50, session.Score)
	})
}

func TestSession_MoveCursor(t *testing.T) {
	t.Run("Arrow moves are clamped and blocked by black cells", func(t *testing.T) {
		// Given: a session with the top-left cell selected
		session := newTestSession()
		require.NoError(t, session.SelectCell(0, 0))

		// When: moving past the grid edge
		require.NoError(t, session.MoveCursor("up"))
		// Then: the cursor is clamped in place
		assert.Equal(t, 0, session.SelectedRow)

		// When: moving right onto an open cell
		require.NoError(t, session.MoveCursor("right"))
		// Then: the cursor follows
		assert.Equal(t, 1, session.SelectedCol)

		// Given: the end of GAME at (0,3)
		require.NoError(t, session.SelectCell(0, 3))
		// When: moving right into a black cell
		require.NoError(t, session.MoveCursor("right"))
		// Then: the cursor stays
		assert.Equal(t, 3, session.SelectedCol)
	})
}

func TestSession_ApplyElapsed(t *testing.T) {
	t.Run("Reaching the time limit freezes the grid", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.SelectCell(0, 0))

		session.ApplyElapsed(TimeLimitSeconds)

		assert.Equal(t, StatusTimeUp, session.GameStatus)
		assert.ErrorIs(t, session.InputLetter(0, 0, "G"), apperror.ErrRoundFinished)
		assert.ErrorIs(t, session.SelectCell(0, 0), apperror.ErrRoundFinished)
	})

	t.Run("Remaining time feeds the completion bonus", func(t *testing.T) {
		// Given: a session 100 seconds in
		session := newTestSession()
		session.ApplyElapsed(100)

		// When: the puzzle is completed
		solveEverything(t, session)

		// Then: the bonus is the unused 500 seconds
		assert.Equal(t, 1000+500, session.Score)
	})
}

func TestSession_Restart(t *testing.T) {
	t.Run("Restart rebuilds a fresh puzzle copy", func(t *testing.T) {
		// Given: a won session with hints spent
		session := newTestSession()
		require.NoError(t, session.SelectCell(0, 0))
		require.NoError(t, session.UseHint())
		solveEverything(t, session)
		require.Equal(t, StatusWon, session.GameStatus)

		// When: the session restarts
		session.Restart()

		// Then: grid, clues, hints, score, selection and timer are fresh
		assert.Equal(t, StatusPlaying, session.GameStatus)
		assert.Equal(t, StartingHints, session.Hints)
		assert.Zero(t, session.Score)
		assert.Zero(t, session.TimeElapsed)
		assert.Equal(t, -1, session.SelectedRow)
		assert.Empty(t, session.Grid[0][0].Letter)
		for _, clue := range session.Clues.Across {
			assert.False(t, clue.Solved)
		}
	})
}
