package parameter

// System Execution Priorities (lower runs first)
// Order mirrors the per-frame data flow: input, motion, collision, interest, objects, travel, camera
const (
	PriorityTour        = 10 // Before locomotion, may replace the input axis
	PriorityLocomotion  = 20
	PriorityCollision   = 30 // After locomotion, corrects the integrated position
	PriorityInterest    = 40
	PriorityInteractive = 50 // After interest, activation targets the nearest object
	PriorityTransition  = 60 // Overrides avatar transform while active
	PriorityCamera      = 70 // Reads the final avatar transform
	PriorityStatus      = 1000
)
