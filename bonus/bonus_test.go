package bonus

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/store"
)

type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }

var t0 = time.Date(2025, 12, 24, 19, 0, 0, 0, time.Local)

func TestNewWheelValidation(t *testing.T) {
	if _, err := NewWheel(nil); !errors.Is(err, ErrNoSegments) {
		t.Errorf("Expected ErrNoSegments, got %v", err)
	}
	_, err := NewWheel([]Segment{{Label: "a", Weight: 1}, {Label: "b", Weight: 0}})
	if !errors.Is(err, ErrWeightNotPos) {
		t.Errorf("Expected ErrWeightNotPos, got %v", err)
	}
}

func TestWheelPickWeighted(t *testing.T) {
	w, err := NewWheel([]Segment{
		{Label: "a", Weight: 1},
		{Label: "b", Weight: 3},
		{Label: "c", Weight: 6},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		r    float64
		want int
	}{
		{0.0, 0},
		{0.09, 0},
		{0.1, 1},
		{0.39, 1},
		{0.4, 2},
		{0.999, 2},
	}
	for _, tc := range tests {
		if got := w.Pick(fixedSource{tc.r}); got != tc.want {
			t.Errorf("Pick(%v): expected %d, got %d", tc.r, tc.want, got)
		}
	}
}

func TestWheelSpinSettlesOnce(t *testing.T) {
	w, _ := NewWheel(DefaultSegments())

	result, err := w.Spin(fixedSource{0.5}, t0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Spin(fixedSource{0.5}, t0); !errors.Is(err, ErrSpinning) {
		t.Errorf("Expected ErrSpinning for a second spin, got %v", err)
	}

	if _, done := w.Update(t0.Add(constants.WheelSpinDuration / 2)); done {
		t.Error("Wheel should not settle mid-spin")
	}
	seg, done := w.Update(t0.Add(constants.WheelSpinDuration))
	if !done {
		t.Fatal("Expected wheel to settle after the spin duration")
	}
	if seg != w.Segments()[result] {
		t.Errorf("Expected segment %d, got %+v", result, seg)
	}
	if _, again := w.Update(t0.Add(2 * constants.WheelSpinDuration)); again {
		t.Error("Settled result must be reported only once")
	}
	if w.Highlight(t0.Add(time.Hour)) != result {
		t.Errorf("Expected pointer at rest on %d, got %d", result, w.Highlight(t0.Add(time.Hour)))
	}
}

func TestWheelHighlightEndsOnResult(t *testing.T) {
	w, _ := NewWheel(DefaultSegments())
	result, _ := w.Spin(fixedSource{0.95}, t0)

	if got := w.Highlight(t0); got != 0 {
		t.Errorf("Expected pointer to start at 0, got %d", got)
	}
	if got := w.Highlight(t0.Add(constants.WheelSpinDuration - time.Nanosecond)); got != result {
		t.Errorf("Expected pointer to reach %d by the end, got %d", result, got)
	}
}

func TestOpponentMovePriority(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  int
	}{
		{
			name:  "takes the win over a block",
			board: Board{Opponent, Opponent, Empty, Player, Player, Empty, Empty, Empty, Empty},
			want:  2,
		},
		{
			name:  "blocks the player",
			board: Board{Player, Player, Empty, Empty, Opponent, Empty, Empty, Empty, Empty},
			want:  2,
		},
		{
			name:  "takes the centre",
			board: Board{Player, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty},
			want:  4,
		},
		{
			name:  "takes a corner",
			board: Board{Empty, Empty, Empty, Empty, Player, Empty, Empty, Empty, Empty},
			want:  0,
		},
		{
			name:  "takes the last free cell",
			board: Board{Player, Opponent, Player, Player, Opponent, Opponent, Opponent, Empty, Player},
			want:  7,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.board
			if got := OpponentMove(&b); got != tc.want {
				t.Errorf("Expected cell %d, got %d", tc.want, got)
			}
		})
	}

	full := Board{Player, Opponent, Player, Player, Opponent, Opponent, Opponent, Player, Player}
	if got := OpponentMove(&full); got != -1 {
		t.Errorf("Expected -1 on a full board, got %d", got)
	}
}

func TestTicTacToeErrors(t *testing.T) {
	g := NewTicTacToe()
	if _, err := g.Play(9); !errors.Is(err, ErrCellRange) {
		t.Errorf("Expected ErrCellRange, got %v", err)
	}
	if _, err := g.Play(0); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Play(0); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Expected ErrCellOccupied, got %v", err)
	}
}

func TestTicTacToeOpponentWins(t *testing.T) {
	g := NewTicTacToe()
	// Opponent takes 4, then 2 to block, then completes 2-4-6
	moves := []int{0, 1, 8}
	var outcome Outcome
	for _, c := range moves {
		var err error
		outcome, err = g.Play(c)
		if err != nil {
			t.Fatalf("Play(%d): %v", c, err)
		}
	}
	if outcome != OpponentWon {
		t.Fatalf("Expected opponent win, got %d with board %v", outcome, g.Board())
	}
	if _, err := g.Play(5); !errors.Is(err, ErrRoundOver) {
		t.Errorf("Expected ErrRoundOver, got %v", err)
	}

	g.Reset()
	if g.Outcome() != InProgress || g.Board() != (Board{}) {
		t.Error("Reset should clear the round")
	}
}

func TestTicTacToeDraw(t *testing.T) {
	g := NewTicTacToe()
	// Player 4 -> O 0; P 8 -> O 2 (corner); P 1 -> O 7 (block); P 6 -> O 3 (first free); P 5 draws
	var outcome Outcome
	for _, c := range []int{4, 8, 1, 6, 5} {
		var err error
		outcome, err = g.Play(c)
		if err != nil {
			t.Fatalf("Play(%d): %v", c, err)
		}
	}
	if outcome != Draw {
		t.Errorf("Expected draw, got %d with board %v", outcome, g.Board())
	}
}

type memLedger struct {
	spins  int
	issued []string
	saves  int
}

func (m *memLedger) SpinsLeft(time.Time) int { return m.spins }

func (m *memLedger) UseSpin(time.Time) (int, error) {
	if m.spins == 0 {
		return 0, store.ErrNoSpins
	}
	m.spins--
	return m.spins, nil
}

func (m *memLedger) IssueVoucher(tier string, now time.Time) store.Voucher {
	m.issued = append(m.issued, tier)
	return store.Voucher{Code: "CAMI-TEST0001", Tier: tier, Issued: now, Expires: now.AddDate(0, 0, 7)}
}

func (m *memLedger) Save() error {
	m.saves++
	return nil
}

func TestArcadeWheelIssuesVoucher(t *testing.T) {
	ledger := &memLedger{spins: 1}
	a, err := NewArcade(ledger, fixedSource{0.0})
	if err != nil {
		t.Fatal(err)
	}

	if err := a.SpinWheel(t0); err != nil {
		t.Fatalf("SpinWheel failed: %v", err)
	}
	if v := a.View(t0); !v.Spinning || v.SpinsLeft != 0 {
		t.Errorf("Expected spinning with 0 spins left, got spinning=%v spins=%d", v.Spinning, v.SpinsLeft)
	}

	a.Update(t0.Add(constants.WheelSpinDuration))
	if len(ledger.issued) != 1 || ledger.issued[0] != constants.Reward500 {
		t.Fatalf("Expected one 5K voucher, got %v", ledger.issued)
	}
	v := a.View(t0.Add(constants.WheelSpinDuration))
	if v.Voucher == nil || v.Voucher.Tier != constants.Reward500 {
		t.Errorf("Expected view voucher 5K, got %+v", v.Voucher)
	}

	if err := a.SpinWheel(t0.Add(time.Minute)); !errors.Is(err, store.ErrNoSpins) {
		t.Errorf("Expected ErrNoSpins, got %v", err)
	}
}

func TestArcadeWheelLosingSlice(t *testing.T) {
	ledger := &memLedger{spins: 1}
	// 0.31 lands in the second slice (weights 30, 25, ...)
	a, _ := NewArcade(ledger, fixedSource{0.31})

	if err := a.SpinWheel(t0); err != nil {
		t.Fatal(err)
	}
	a.Update(t0.Add(constants.WheelSpinDuration))
	if len(ledger.issued) != 0 {
		t.Errorf("Losing slice should not issue, got %v", ledger.issued)
	}
	if a.View(t0).Message != constants.WheelLoseLabel {
		t.Errorf("Expected lose message, got %q", a.View(t0).Message)
	}
}

func TestArcadeTicTacToeWin(t *testing.T) {
	ledger := &memLedger{}
	a, _ := NewArcade(ledger, fixedSource{0})
	a.Enter()

	// Seed a board where cell 2 completes the top row
	a.tic.board = Board{Player, Player, Empty, Opponent, Opponent, Player, Opponent, Empty, Empty}
	if err := a.PlayCell(2, t0); err != nil {
		t.Fatal(err)
	}
	if a.tic.Outcome() != PlayerWon {
		t.Fatalf("Expected player win, got %d", a.tic.Outcome())
	}
	if len(ledger.issued) != 1 || ledger.issued[0] != constants.RewardTicTac {
		t.Errorf("Expected tic-tac-toe voucher, got %v", ledger.issued)
	}
	if a.View(t0).Message != constants.TicTacWinText {
		t.Errorf("Expected win message, got %q", a.View(t0).Message)
	}

	a.ResetBoard()
	if a.View(t0).Voucher != nil || a.View(t0).Outcome != InProgress {
		t.Error("ResetBoard should clear voucher and outcome")
	}
}
