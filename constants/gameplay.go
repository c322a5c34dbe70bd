// @focus: #constants { gameplay }
package constants

import "time"

// Playfield geometry, all values in percent of the playfield
const (
	// GameWidth is the logical playfield width
	GameWidth = 100.0

	// PlayerWidth is the player hitbox width
	PlayerWidth = 15.0

	// PlayerHeight is the player hitbox height
	PlayerHeight = 8.0

	// PlayerY is the top edge of the player hitbox
	PlayerY = 82.0

	// PlayerMoveRate is the horizontal distance covered per millisecond of held input
	PlayerMoveRate = 0.08
)

// Frame normalization
const (
	// FrameMs is the reference frame length; dt = deltaMs / FrameMs
	FrameMs = 16.67

	// FrameUpdateInterval is the default scheduling interval of the loop
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick delta after a stall
	MaxFrameDelta = 250 * time.Millisecond
)

// Lives
const (
	InitialLives = 3
	MaxLives     = 5
)

// Falling item spawning
const (
	// SpawnBaseDelay is divided by the speed multiplier to get the minimum inter-spawn delay
	SpawnBaseDelay = 800 * time.Millisecond

	// SpawnChance is the per-tick probability once the delay has elapsed
	SpawnChance = 0.05

	// SpecialChance and HeartChance are cumulative thresholds of the kind roll
	SpecialChance = 0.01
	HeartChance   = 0.05

	ItemSpawnY    = -15.0
	ItemMinSize   = 6.0
	ItemSizeRange = 4.0

	ItemMinSpeed   = 0.15
	ItemSpeedRange = 0.2

	// ItemFallFactor scales item speed during integration
	ItemFallFactor = 1.5

	// ItemCullY is the lower bound past which items leave the playfield
	ItemCullY = 105.0

	// ClusterGuardY keeps a new item near the previous one while that one is still high up
	ClusterGuardY = 30.0

	// ClusterSpread is the maximum horizontal offset from the previous item
	ClusterSpread = 50.0

	MinItemPoints = 10
	MaxItemPoints = 20

	// LevelSpeedStep is added to the speed multiplier per level
	LevelSpeedStep = 0.25
)

// Projectiles
const (
	ProjectileSize  = 3.0
	ProjectileSpeed = 0.8

	// ProjectileCullY removes player projectiles above the playfield
	ProjectileCullY = -5.0

	ShootInterval     = 300 * time.Millisecond
	BossShootInterval = 250 * time.Millisecond

	BossProjectileSize  = 3.0
	BossProjectileSpeed = 0.6

	// BossProjectileCullY removes boss projectiles below the playfield
	BossProjectileCullY = 100.0
)

// Scoring and milestones
const (
	// MilestoneStep is the score distance between rewards and sub-mode flips
	MilestoneStep = 500

	// UltimateItemBonus is added on top of each blasted item's points
	UltimateItemBonus = 20

	// UltimateBaseBonus is awarded once per ultimate
	UltimateBaseBonus = 100

	// BossDefeatBonus is awarded when the boss reaches zero HP
	BossDefeatBonus = 5000

	// ComboLength is the number of consecutive red gifts that fire the combo
	ComboLength = 5
)

// Reward tiers
const (
	Reward500      = "5K"
	Reward1000     = "10K"
	Reward1500     = "10%"
	RewardTop      = "15%"
	RewardBoss     = "HỘP QUÀ KIM CƯƠNG"
	RewardTicTac   = "5K"
	VoucherPrefix  = "CAMI-"
	VoucherLifeDay = 7
)

// Boss battle
const (
	BossMaxHP     = 100
	BossHitDamage = 2
	BossWidth     = 20.0
	BossHeight    = 12.0
	BossY         = 6.0
	BossMinX      = 2.0
	BossMaxX      = 78.0
	BossSpeed     = 0.35

	// BossAttackBase is the attack interval at zero HP; a full-HP boss waits twice as long
	BossAttackBase = 1000 * time.Millisecond

	BossHitFlash = 120 * time.Millisecond
)

// Transient effect durations
const (
	ShakeDuration        = 300 * time.Millisecond
	NotificationDuration = 2 * time.Second
	ModeFlashDuration    = 1 * time.Second
	CelebrateDuration    = 1 * time.Second
	UltimateDuration     = 3 * time.Second

	// UltimateSpawnBuffer delays the first spawn after the cutscene
	UltimateSpawnBuffer = 1 * time.Second
)

// Particles
const (
	ConfettiPerBurst   = 12
	GameOverConfetti   = 60
	ParticleGravity    = 0.02
	TextParticleDecay  = 0.02
	TextParticleRise   = -0.1
	ComboParticleDecay = 0.015
)

// Mode switch notifications
const (
	NotifyShoot = "CHẾ ĐỘ BẮN QUÀ!"
	NotifyCatch = "CHẾ ĐỘ HỨNG QUÀ!"
)
