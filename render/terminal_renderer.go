package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/festive-catch/bonus"
	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/store"
)

const (
	minFieldWidth  = 20
	minFieldHeight = 10
	statusRows     = 1
)

// Frame bundles everything drawn in one pass
type Frame struct {
	Snap    *engine.Snapshot
	Bonus   *bonus.View    // nil outside side activities
	Voucher *store.Voucher // Last voucher from gameplay rewards
	Muted   bool
}

// TerminalRenderer draws snapshots into a tcell screen
// The playfield is mapped from percent units onto the cells inside the border
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	fieldX      int
	fieldY      int
	fieldWidth  int
	fieldHeight int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the playfield layout
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.fieldX = 1
	r.fieldY = statusRows + 1
	r.fieldWidth = width - 2
	r.fieldHeight = height - statusRows - 2
}

// TooSmall reports whether the screen cannot hold a playable field
func (r *TerminalRenderer) TooSmall() bool {
	return r.fieldWidth < minFieldWidth || r.fieldHeight < minFieldHeight
}

// cell maps playfield percent coordinates to a screen cell
func (r *TerminalRenderer) cell(x, y float64) (int, int) {
	cx := r.fieldX + int(math.Floor(x/constants.GameWidth*float64(r.fieldWidth)))
	cy := r.fieldY + int(math.Floor(y/100.0*float64(r.fieldHeight)))
	return cx, cy
}

func (r *TerminalRenderer) inField(cx, cy int) bool {
	return cx >= r.fieldX && cx < r.fieldX+r.fieldWidth && cy >= r.fieldY && cy < r.fieldY+r.fieldHeight
}

// Draw renders one frame
func (r *TerminalRenderer) Draw(f Frame) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.fill(0, 0, r.width, r.height, base)

	if r.TooSmall() {
		r.drawCentered(r.height/2, "CỬA SỔ QUÁ NHỎ", base)
		r.screen.Show()
		return
	}

	s := f.Snap
	r.drawStatusBar(s, f.Muted, base)
	r.drawBorder(s, base)

	switch s.Phase {
	case engine.PhaseStart:
		r.drawStart(s, base)
	case engine.PhaseLuckyWheel:
		r.drawWheel(f.Bonus, base)
	case engine.PhaseTicTacToe:
		r.drawTicTacToe(f.Bonus, base)
	default:
		r.drawField(s, base)
	}

	r.drawParticles(s, base)

	switch s.Phase {
	case engine.PhasePaused:
		r.drawOverlay([]string{constants.PausedText}, base)
	case engine.PhaseGameOver:
		r.drawOverlay([]string{
			constants.GameOverText,
			fmt.Sprintf("ĐIỂM: %d   KỶ LỤC: %d", s.Score, s.HighScore),
		}, base)
	case engine.PhaseReward:
		lines := []string{constants.RewardText, s.RewardTier}
		if f.Voucher != nil {
			lines = append(lines, fmt.Sprintf("MÃ: %s  (HSD %s)", f.Voucher.Code, f.Voucher.Expires.Format("02/01/2006")))
		}
		lines = append(lines, constants.RewardHint)
		r.drawOverlay(lines, base)
	}

	if s.UltimateActive {
		secs := int(math.Ceil(s.UltimateRemaining.Seconds()))
		r.drawOverlay([]string{constants.UltimateText, fmt.Sprintf("%d", secs)}, base.Background(RgbUltimate))
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawText writes s starting at x, advancing by display width; returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= r.width && y >= 0 && y < r.height {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
	return x
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, r.width, "…")
	x := (r.width - runewidth.StringWidth(s)) / 2
	r.drawText(x, y, s, style)
}

// drawGlyph centres a glyph on the cell of (x, y) and clips to the field
func (r *TerminalRenderer) drawGlyph(x, y float64, glyph string, style tcell.Style) {
	cx, cy := r.cell(x, y)
	cx -= runewidth.StringWidth(glyph) / 2
	if !r.inField(cx, cy) {
		return
	}
	r.drawText(cx, cy, glyph, style)
}

func (r *TerminalRenderer) drawStatusBar(s *engine.Snapshot, muted bool, base tcell.Style) {
	bar := base.Background(RgbBorder).Foreground(RgbOverlayText)
	r.fill(0, 0, r.width, statusRows, bar)

	x := r.drawText(1, 0, "ĐIỂM ", bar)
	x = r.drawText(x, 0, fmt.Sprintf("%d", s.Score), bar.Foreground(RgbScore).Bold(true))
	x = r.drawText(x+2, 0, strings.Repeat("♥", s.Lives), bar.Foreground(RgbLife))
	x = r.drawText(x+2, 0, s.Mode.String(), bar)
	if s.Combo > 0 && s.Mode == engine.ModeCatch {
		x = r.drawText(x+2, 0, fmt.Sprintf("x%d", s.Combo), bar.Foreground(RgbCombo))
	}

	right := fmt.Sprintf("KỶ LỤC %d", s.HighScore)
	if muted {
		right = "🔇 " + right
	}
	rx := r.width - runewidth.StringWidth(right) - 1
	if rx > x {
		r.drawText(rx, 0, right, bar)
	}
}

func (r *TerminalRenderer) drawBorder(s *engine.Snapshot, base tcell.Style) {
	color := RgbBorder
	if s.ModeFlash {
		tint := constants.ColorCatchTint
		if s.Mode == engine.ModeShoot {
			tint = constants.ColorShootTint
		}
		color = Tint(constants.ColorBorder, tint, 0.8)
	}
	style := base.Foreground(color)

	top, bottom := r.fieldY-1, r.fieldY+r.fieldHeight
	left, right := r.fieldX-1, r.fieldX+r.fieldWidth
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *TerminalRenderer) drawField(s *engine.Snapshot, base tcell.Style) {
	for i := range s.Items {
		it := &s.Items[i]
		cx, cy := it.Center()
		r.drawGlyph(cx, cy, ItemGlyph(it.Kind), base.Foreground(ItemColor(it.Kind)))
	}

	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		r.drawGlyph(p.X+p.Width/2, p.Y+p.Height/2, constants.GlyphProjectile, base.Foreground(RgbProjectile))
	}
	for i := range s.BossProjectiles {
		p := &s.BossProjectiles[i]
		r.drawGlyph(p.X+p.Width/2, p.Y+p.Height/2, constants.GlyphBossShot, base.Foreground(RgbBossShot))
	}

	if s.Boss != nil {
		r.drawBoss(s.Boss, s.BossHit, base)
	}

	r.drawPlayer(s, base)

	if s.Notification != "" {
		tint := RgbCatchTint
		if s.Mode == engine.ModeShoot {
			tint = RgbShootTint
		}
		r.drawCentered(r.fieldY+r.fieldHeight/3, s.Notification, base.Foreground(tint).Bold(true))
	}
}

func (r *TerminalRenderer) drawBoss(b *component.Boss, hit bool, base tcell.Style) {
	style := base.Foreground(RgbBoss)
	if hit {
		style = base.Foreground(RgbBossHit).Background(RgbBoss)
	}
	r.drawGlyph(b.X+b.Width/2, b.Y+b.Height/2, constants.GlyphBoss, style)

	// HP bar across the boss width, one row above it
	x0, y0 := r.cell(b.X, b.Y)
	x1, _ := r.cell(b.X+b.Width, b.Y)
	width := x1 - x0
	if width < 1 {
		width = 1
	}
	filled := int(math.Round(float64(width) * float64(b.HP) / constants.BossMaxHP))
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		if r.inField(x0+i, y0) {
			r.screen.SetContent(x0+i, y0, ch, nil, base.Foreground(RgbPlayerHit))
		}
	}
	r.drawCentered(r.fieldY-1, constants.BossTitleText, base.Foreground(RgbBoss).Bold(true))
}

func (r *TerminalRenderer) drawPlayer(s *engine.Snapshot, base tcell.Style) {
	p := s.Player.Bounds()
	x := p.X + p.W/2
	style := base.Foreground(RgbPlayer).Bold(true)
	if s.Shaking {
		style = base.Foreground(RgbPlayerHit).Bold(true)
		// Alternate one cell left and right on successive frames
		if s.Frame%2 == 0 {
			x -= constants.GameWidth / float64(r.fieldWidth)
		} else {
			x += constants.GameWidth / float64(r.fieldWidth)
		}
	}
	glyph := constants.GlyphPlayer
	if s.Celebrating {
		glyph = "=^o^="
		style = style.Foreground(RgbCombo)
	}
	r.drawGlyph(x, p.Y+p.H/2, glyph, style)
}

func (r *TerminalRenderer) drawParticles(s *engine.Snapshot, base tcell.Style) {
	for i := range s.Particles {
		p := &s.Particles[i]
		color := FadeToward(p.Color, constants.ColorBackground, p.Life)
		switch p.Kind {
		case component.ParticleText:
			r.drawGlyph(p.X, p.Y, p.Text, base.Foreground(color).Bold(true))
		case component.ParticleConfetti:
			r.drawGlyph(p.X, p.Y, constants.GlyphConfetti, base.Foreground(color))
		}
	}
}

func (r *TerminalRenderer) drawOverlay(lines []string, base tcell.Style) {
	style := base.Background(RgbOverlayBg).Foreground(RgbOverlayText).Bold(true)
	width := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	width += 4
	if width > r.width {
		width = r.width
	}
	height := len(lines) + 2
	x := (r.width - width) / 2
	y := r.fieldY + (r.fieldHeight-height)/2
	r.fill(x, y, width, height, style)
	for i, l := range lines {
		r.drawCentered(y+1+i, l, style)
	}
}

func (r *TerminalRenderer) drawStart(s *engine.Snapshot, base tcell.Style) {
	mid := r.fieldY + r.fieldHeight/2
	r.drawCentered(mid-3, constants.TitleText, base.Foreground(RgbPlayerHit).Bold(true))
	r.drawCentered(mid-1, constants.GlyphPlayer, base.Foreground(RgbPlayer).Bold(true))
	r.drawCentered(mid+1, constants.StartHint, base)
	if s.HighScore > 0 {
		r.drawCentered(mid+3, fmt.Sprintf("KỶ LỤC: %d", s.HighScore), base.Foreground(RgbBorder))
	}
}

func (r *TerminalRenderer) drawWheel(v *bonus.View, base tcell.Style) {
	top := r.fieldY + 1
	r.drawCentered(top, "VÒNG QUAY MAY MẮN", base.Foreground(RgbPlayerHit).Bold(true))
	if v == nil {
		return
	}
	for i, seg := range v.Segments {
		style := base
		label := "  " + seg.Label + "  "
		if i == v.Highlight {
			style = base.Background(RgbScore).Bold(true)
			label = "▶ " + seg.Label + " ◀"
		}
		r.drawCentered(top+2+i, label, style)
	}
	y := top + 3 + len(v.Segments)
	r.drawCentered(y, fmt.Sprintf("LƯỢT QUAY CÒN LẠI: %d", v.SpinsLeft), base)
	r.drawMessage(y+2, v, base)
	r.drawCentered(r.fieldY+r.fieldHeight-1, "[space] quay  [q] về menu", base)
}

func (r *TerminalRenderer) drawTicTacToe(v *bonus.View, base tcell.Style) {
	top := r.fieldY + 1
	r.drawCentered(top, "CỜ CARO", base.Foreground(RgbPlayerHit).Bold(true))
	if v == nil {
		return
	}
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			mark := v.Board[idx]
			if mark == bonus.Empty {
				cells[col] = fmt.Sprintf("%d", idx+1)
			} else {
				cells[col] = mark.String()
			}
		}
		r.drawCentered(top+2+row*2, " "+strings.Join(cells, " │ ")+" ", base.Bold(true))
		if row < 2 {
			r.drawCentered(top+3+row*2, "───┼───┼───", base)
		}
	}
	r.drawMessage(top+8, v, base)
	r.drawCentered(r.fieldY+r.fieldHeight-1, "[1-9] đánh  [n] ván mới  [q] về menu", base)
}

func (r *TerminalRenderer) drawMessage(y int, v *bonus.View, base tcell.Style) {
	if v.Message != "" {
		r.drawCentered(y, v.Message, base.Foreground(RgbBorder).Bold(true))
	}
	if v.Voucher != nil {
		r.drawCentered(y+1, fmt.Sprintf("MÃ: %s  (HSD %s)", v.Voucher.Code, v.Voucher.Expires.Format("02/01/2006")), base.Foreground(RgbPlayerHit))
	}
}
