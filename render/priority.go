package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityFloor Priority = iota
	PriorityObstacle
	PriorityObject
	PriorityAvatar
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
