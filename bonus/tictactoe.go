package bonus

import (
	"github.com/pkg/errors"
)

// Mark is the content of a board cell
type Mark uint8

const (
	Empty Mark = iota
	Player
	Opponent
)

func (m Mark) String() string {
	switch m {
	case Player:
		return "X"
	case Opponent:
		return "O"
	default:
		return " "
	}
}

// Outcome is the state of a tic-tac-toe round
type Outcome uint8

const (
	InProgress Outcome = iota
	PlayerWon
	OpponentWon
	Draw
)

var (
	ErrCellRange    = errors.New("cell out of range")
	ErrCellOccupied = errors.New("cell already taken")
	ErrRoundOver    = errors.New("round is over")
)

// Board is a 3x3 grid indexed row-major 0..8
type Board [9]Mark

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark owning a full line, Empty if none
func (b *Board) Winner() Mark {
	for _, l := range winLines {
		m := b[l[0]]
		if m != Empty && b[l[1]] == m && b[l[2]] == m {
			return m
		}
	}
	return Empty
}

// Full reports whether no empty cell remains
func (b *Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// completing returns a cell that would give m a line, -1 if none
func (b *Board) completing(m Mark) int {
	for _, l := range winLines {
		count, empty := 0, -1
		for _, c := range l {
			switch b[c] {
			case m:
				count++
			case Empty:
				empty = c
			}
		}
		if count == 2 && empty >= 0 {
			return empty
		}
	}
	return -1
}

// OpponentMove chooses a cell: win, block, centre, corner, then any free cell
// Returns -1 on a full board
func OpponentMove(b *Board) int {
	if c := b.completing(Opponent); c >= 0 {
		return c
	}
	if c := b.completing(Player); c >= 0 {
		return c
	}
	if b[4] == Empty {
		return 4
	}
	for _, c := range [...]int{0, 2, 6, 8} {
		if b[c] == Empty {
			return c
		}
	}
	for c, m := range b {
		if m == Empty {
			return c
		}
	}
	return -1
}

// TicTacToe is one round where the player always moves first
type TicTacToe struct {
	board   Board
	outcome Outcome
}

// NewTicTacToe starts an empty round
func NewTicTacToe() *TicTacToe {
	return &TicTacToe{}
}

// Board returns a copy of the grid
func (g *TicTacToe) Board() Board {
	return g.board
}

// Outcome returns the round state
func (g *TicTacToe) Outcome() Outcome {
	return g.outcome
}

// Reset clears the board for a new round
func (g *TicTacToe) Reset() {
	g.board = Board{}
	g.outcome = InProgress
}

// Play places the player's mark and answers with the opponent's move
func (g *TicTacToe) Play(cell int) (Outcome, error) {
	if g.outcome != InProgress {
		return g.outcome, ErrRoundOver
	}
	if cell < 0 || cell >= len(g.board) {
		return g.outcome, errors.Wrapf(ErrCellRange, "cell %d", cell)
	}
	if g.board[cell] != Empty {
		return g.outcome, errors.Wrapf(ErrCellOccupied, "cell %d", cell)
	}

	g.board[cell] = Player
	if g.settle() {
		return g.outcome, nil
	}

	g.board[OpponentMove(&g.board)] = Opponent
	g.settle()
	return g.outcome, nil
}

func (g *TicTacToe) settle() bool {
	switch g.board.Winner() {
	case Player:
		g.outcome = PlayerWon
	case Opponent:
		g.outcome = OpponentWon
	default:
		if !g.board.Full() {
			return false
		}
		g.outcome = Draw
	}
	return true
}
