package system

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn     = 10
	PrioritySteer     = 20
	PriorityMove      = 30
	PriorityCollision = 40
)
