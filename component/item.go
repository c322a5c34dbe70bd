package component

import (
	"math"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/vmath"
)

// ItemKind is the closed set of falling item types
type ItemKind uint8

const (
	ItemGiftRed ItemKind = iota
	ItemGiftGreen
	ItemSock
	ItemSnowflake
	ItemOrnament
	ItemGingerbread
	ItemHeart
	ItemGoldenTicket
)

// OrdinaryKinds lists the decorative kinds drawn uniformly by the spawner
var OrdinaryKinds = []ItemKind{
	ItemGiftRed,
	ItemGiftGreen,
	ItemSock,
	ItemSnowflake,
	ItemOrnament,
	ItemGingerbread,
}

var itemKindNames = [...]string{
	ItemGiftRed:      "gift-red",
	ItemGiftGreen:    "gift-green",
	ItemSock:         "sock",
	ItemSnowflake:    "snowflake",
	ItemOrnament:     "ornament",
	ItemGingerbread:  "gingerbread",
	ItemHeart:        "heart",
	ItemGoldenTicket: "golden-ticket",
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "unknown"
}

// IsOrdinary reports whether the kind scores points and can cost lives
func (k ItemKind) IsOrdinary() bool {
	return k <= ItemGingerbread
}

// FallingItem is a collectible or obstacle descending through the playfield
type FallingItem struct {
	ID       Entity
	X, Y     float64 // Percent of playfield, Y < 0 is above the visible area
	Width    float64 // Percent of playfield width, also used as height
	Speed    float64
	Rotation float64 // Degrees, cosmetic
	Kind     ItemKind
	Points   int // Clamped to [MinItemPoints, MaxItemPoints]
}

// Bounds returns the square hitbox
func (i *FallingItem) Bounds() vmath.Rect {
	return vmath.Rect{X: i.X, Y: i.Y, W: i.Width, H: i.Width}
}

// Center returns the hitbox centre, used as particle origin
func (i *FallingItem) Center() (float64, float64) {
	return i.X + i.Width/2, i.Y + i.Width/2
}

// OffScreen reports whether the item has fallen past the cull line
func (i *FallingItem) OffScreen() bool {
	return i.Y > constants.ItemCullY
}

// PointsForSize derives the point value: smaller items are worth more
func PointsForSize(size float64) int {
	points := int(math.Floor(10 + (10 - (size-constants.ItemMinSize)*2.5) + 0.5))
	if points < constants.MinItemPoints {
		return constants.MinItemPoints
	}
	if points > constants.MaxItemPoints {
		return constants.MaxItemPoints
	}
	return points
}
