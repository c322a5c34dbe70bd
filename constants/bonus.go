package constants

import "time"

// Lucky wheel
const (
	// DefaultDailySpins is the per-day wheel allowance
	DefaultDailySpins = 3

	// WheelSpinDuration is how long the pointer travels before settling
	WheelSpinDuration = 3 * time.Second

	// WheelMinTurns is the number of full revolutions before the final segment
	WheelMinTurns = 3

	WheelLoseLabel = "CHÚC MAY MẮN LẦN SAU"
)

// Tic-tac-toe
const (
	TicTacWinText  = "BẠN THẮNG! NHẬN VOUCHER 5K"
	TicTacLoseText = "MÁY THẮNG RỒI!"
	TicTacDrawText = "HÒA!"
)
