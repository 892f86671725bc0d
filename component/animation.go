package component

// Animation advances a sprite-sheet frame index on a fixed cadence
// Elapsed accumulates delta time; the remainder is retained across frames
type Animation struct {
	FrameCount    int
	FrameDuration float64 // seconds per frame
	CurrentFrame  int
	Playing       bool
	Loop          bool
	Elapsed       float64
}
