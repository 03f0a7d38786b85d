package systems

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order
const (
	LayerBackdrop ecs.LayerID = iota
	LayerOverlay
)
