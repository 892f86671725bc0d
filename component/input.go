package component

// Input marks an entity as player-controlled
type Input struct {
	MoveSpeed float64
	JumpForce float64
}
