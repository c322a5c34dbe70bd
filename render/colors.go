package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
)

// Palette resolved from the hex constants
var (
	RgbBackground  = HexColor(constants.ColorBackground)
	RgbBorder      = HexColor(constants.ColorBorder)
	RgbText        = HexColor(constants.ColorText)
	RgbScore       = HexColor(constants.ColorScore)
	RgbLife        = HexColor(constants.ColorLife)
	RgbUltimate    = HexColor(constants.ColorUltimate)
	RgbShootTint   = HexColor(constants.ColorShootTint)
	RgbCatchTint   = HexColor(constants.ColorCatchTint)
	RgbPlayer      = HexColor(constants.ColorPlayer)
	RgbPlayerHit   = HexColor(constants.ColorPlayerHit)
	RgbProjectile  = HexColor(constants.ColorProjectile)
	RgbBoss        = HexColor(constants.ColorBoss)
	RgbBossHit     = HexColor(constants.ColorBossHit)
	RgbBossShot    = HexColor(constants.ColorBossShot)
	RgbCombo       = HexColor(constants.ColorCombo)
	RgbOverlayText = HexColor(constants.ColorOverlayText)
	RgbOverlayBg   = HexColor(constants.ColorOverlayBg)
)

var (
	colorCacheMu sync.Mutex
	colorCache   = make(map[string]colorful.Color)
)

// parseHex returns the parsed color, white for malformed input
func parseHex(hex string) colorful.Color {
	colorCacheMu.Lock()
	defer colorCacheMu.Unlock()

	if c, ok := colorCache[hex]; ok {
		return c
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	colorCache[hex] = c
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HexColor converts a "#RRGGBB" string to a terminal color
func HexColor(hex string) tcell.Color {
	return toTcell(parseHex(hex))
}

// FadeToward blends fg toward bg as life runs out; life 1 is fg, life 0 is bg
func FadeToward(fg, bg string, life float64) tcell.Color {
	if life >= 1 {
		return HexColor(fg)
	}
	if life < 0 {
		life = 0
	}
	return toTcell(parseHex(bg).BlendLab(parseHex(fg), life))
}

// Tint mixes amount of tint into base, used for the mode-switch border flash
func Tint(base, tint string, amount float64) tcell.Color {
	return toTcell(parseHex(base).BlendRgb(parseHex(tint), amount))
}

// ItemColor is the glyph color per item kind
func ItemColor(kind component.ItemKind) tcell.Color {
	switch kind {
	case component.ItemGiftRed, component.ItemSock:
		return HexColor(constants.PaletteGiftRed[0])
	case component.ItemGiftGreen:
		return HexColor(constants.PaletteGiftGreen[0])
	case component.ItemHeart:
		return RgbLife
	case component.ItemGoldenTicket:
		return RgbUltimate
	case component.ItemGingerbread:
		return HexColor("#B45309")
	case component.ItemSnowflake:
		return HexColor("#38BDF8")
	default:
		return RgbText
	}
}

// ItemGlyph is the glyph per item kind
func ItemGlyph(kind component.ItemKind) string {
	switch kind {
	case component.ItemGiftRed:
		return constants.GlyphGiftRed
	case component.ItemGiftGreen:
		return constants.GlyphGiftGreen
	case component.ItemSock:
		return constants.GlyphSock
	case component.ItemSnowflake:
		return constants.GlyphSnowflake
	case component.ItemOrnament:
		return constants.GlyphOrnament
	case component.ItemGingerbread:
		return constants.GlyphGingerbread
	case component.ItemHeart:
		return constants.GlyphHeart
	case component.ItemGoldenTicket:
		return constants.GlyphTicket
	default:
		return "?"
	}
}
