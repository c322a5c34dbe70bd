package constants

// Item glyphs, two cells wide so the falling items read as blocks in a terminal
const (
	GlyphGiftRed     = "🎁"
	GlyphGiftGreen   = "🎄"
	GlyphSock        = "🧦"
	GlyphSnowflake   = "❄"
	GlyphOrnament    = "🔮"
	GlyphGingerbread = "🍪"
	GlyphHeart       = "❤"
	GlyphTicket      = "🎫"
	GlyphProjectile  = "●"
	GlyphBossShot    = "▼"
	GlyphConfetti    = "▪"
	GlyphPlayer      = "=^.^="
	GlyphBoss        = "⛄"
)

// Palette as hex strings, parsed by the renderer
const (
	ColorBackground  = "#FFF6EA"
	ColorBorder      = "#15803D"
	ColorText        = "#1F2937"
	ColorScore       = "#FFD700"
	ColorLife        = "#EC4899"
	ColorUltimate    = "#3B82F6"
	ColorShootTint   = "#EF4444"
	ColorCatchTint   = "#10B981"
	ColorPlayer      = "#F97316"
	ColorPlayerHit   = "#DC2626"
	ColorProjectile  = "#A855F7"
	ColorBoss        = "#60A5FA"
	ColorBossHit     = "#FFFFFF"
	ColorBossShot    = "#1E3A8A"
	ColorCombo       = "#EC4899"
	ColorOverlayText = "#FFFFFF"
	ColorOverlayBg   = "#7F1D1D"
)

// Confetti palettes per item kind
var (
	PaletteGiftRed   = []string{"#EF4444", "#FCD34D", "#FFFFFF"}
	PaletteGiftGreen = []string{"#10B981", "#EF4444", "#FFFFFF"}
	PaletteSock      = []string{"#DC2626", "#FFFFFF", "#FECACA"}
	PaletteHeart     = []string{"#EC4899", "#FBCFE8", "#FFFFFF"}
	PaletteTicket    = []string{"#3B82F6", "#FCD34D", "#FFFFFF", "#1E3A8A"}
	PaletteDefault   = []string{"#FFFFFF", "#CBD5E1"}
	PaletteGameOver  = []string{"#EF4444", "#10B981", "#FCD34D", "#FFFFFF", "#DC2626"}
)

// Overlay text
const (
	TitleText     = "CAMI KIDS - HỨNG QUÀ GIÁNG SINH"
	StartHint     = "[Enter] chơi  [b] đánh boss  [w] vòng quay  [t] cờ caro  [q] thoát"
	PausedText    = "TẠM DỪNG - [p] tiếp tục  [q] về menu"
	GameOverText  = "HẾT LƯỢT! [r] chơi lại  [q] về menu"
	RewardText    = "CHÚC MỪNG! BẠN NHẬN ĐƯỢC VOUCHER"
	RewardHint    = "[Enter] tiếp tục  [q] về menu"
	UltimateText  = "ULTIMATE!"
	ComboText     = "COMBO X5!"
	BossTitleText = "TRÙM NGƯỜI TUYẾT"
)
