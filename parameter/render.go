package parameter

// Terminal backend cell mapping: one character cell covers this many
// world pixels; tuned for common 1:2 glyph aspect
const (
	CellPixelsX = 8.0
	CellPixelsY = 16.0
)

// Placeholder fill for sprites whose texture is missing or failed
var (
	PlaceholderR uint8 = 128
	PlaceholderG uint8 = 128
	PlaceholderB uint8 = 128
)
