package bonus

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/store"
	"github.com/lixenwraith/festive-catch/vmath"
)

// Ledger is the persistence the side activities draw on
type Ledger interface {
	SpinsLeft(today time.Time) int
	UseSpin(today time.Time) (int, error)
	IssueVoucher(tier string, now time.Time) store.Voucher
	Save() error
}

// View is a read-only projection of both side activities for rendering
type View struct {
	Segments  []Segment
	Highlight int
	Spinning  bool
	SpinsLeft int

	Board   Board
	Outcome Outcome

	Message string
	Voucher *store.Voucher
}

// Arcade owns the lucky wheel and tic-tac-toe sessions
// Accessed only from the loop goroutine
type Arcade struct {
	ledger Ledger
	src    vmath.Source
	wheel  *Wheel
	tic    *TicTacToe

	message string
	voucher *store.Voucher
}

// NewArcade creates the side activities with the default wheel
func NewArcade(ledger Ledger, src vmath.Source) (*Arcade, error) {
	wheel, err := NewWheel(DefaultSegments())
	if err != nil {
		return nil, err
	}
	return &Arcade{
		ledger: ledger,
		src:    src,
		wheel:  wheel,
		tic:    NewTicTacToe(),
	}, nil
}

// Enter clears the last message and starts a fresh board
func (a *Arcade) Enter() {
	a.message = ""
	a.voucher = nil
	a.tic.Reset()
}

// SpinWheel consumes a daily spin and starts the wheel
func (a *Arcade) SpinWheel(now time.Time) error {
	if a.wheel.Spinning() {
		return ErrSpinning
	}
	if _, err := a.ledger.UseSpin(now); err != nil {
		a.message = "HẾT LƯỢT QUAY HÔM NAY"
		return err
	}
	a.message = ""
	a.voucher = nil
	if _, err := a.wheel.Spin(a.src, now); err != nil {
		return err
	}
	a.save()
	return nil
}

// Update settles a finished spin and issues its voucher
func (a *Arcade) Update(now time.Time) {
	seg, done := a.wheel.Update(now)
	if !done {
		return
	}
	if seg.Tier == "" {
		a.message = seg.Label
		return
	}
	a.issue(seg.Tier, now)
	a.message = fmt.Sprintf("TRÚNG %s!", seg.Label)
}

// PlayCell places the player's mark; a win issues the tic-tac-toe voucher
func (a *Arcade) PlayCell(cell int, now time.Time) error {
	outcome, err := a.tic.Play(cell)
	if err != nil {
		return err
	}
	switch outcome {
	case PlayerWon:
		a.issue(constants.RewardTicTac, now)
		a.message = constants.TicTacWinText
	case OpponentWon:
		a.message = constants.TicTacLoseText
	case Draw:
		a.message = constants.TicTacDrawText
	}
	return nil
}

// ResetBoard starts a new tic-tac-toe round
func (a *Arcade) ResetBoard() {
	a.tic.Reset()
	a.message = ""
	a.voucher = nil
}

// View projects the current activity state
func (a *Arcade) View(now time.Time) View {
	v := View{
		Segments:  a.wheel.Segments(),
		Highlight: a.wheel.Highlight(now),
		Spinning:  a.wheel.Spinning(),
		SpinsLeft: a.ledger.SpinsLeft(now),
		Board:     a.tic.Board(),
		Outcome:   a.tic.Outcome(),
		Message:   a.message,
	}
	if a.voucher != nil {
		cp := *a.voucher
		v.Voucher = &cp
	}
	return v
}

func (a *Arcade) issue(tier string, now time.Time) {
	v := a.ledger.IssueVoucher(tier, now)
	a.voucher = &v
	log.Printf("bonus: issued voucher %s tier %s", v.Code, v.Tier)
	a.save()
}

func (a *Arcade) save() {
	if err := a.ledger.Save(); err != nil {
		log.Printf("bonus: save failed: %v", err)
	}
}
