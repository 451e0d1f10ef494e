package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the host render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single step in seconds
	// Protects integration against resume-from-background spikes
	MaxFrameDelta = 0.05
)

// Input Event Queue
const (
	// EventQueueSize is the fixed capacity of the input ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Collision
const (
	// CollisionDegenerateDistance is the planar distance under which the push normal is undefined
	CollisionDegenerateDistance = 1e-4
)
