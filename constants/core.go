package constants

import "time"

// System Execution Priorities (lower runs first)
// Order is fixed: mode, input, spawn, fire, motion, collision, boss, score
const (
	PriorityMode      = 10
	PriorityInput     = 20
	PrioritySpawn     = 30
	PriorityFire      = 40
	PriorityMotion    = 50
	PriorityCollision = 60
	PriorityBoss      = 70
	PriorityScore     = 80
)

// KeyHoldWindow bridges gaps between terminal key repeats
// Terminals report no key release, so a held key is a stream of presses
const KeyHoldWindow = 180 * time.Millisecond
