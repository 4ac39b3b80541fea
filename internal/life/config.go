package life

// Config controls the engine dimensions and stepping behaviour.
type Config struct {
	Width  int
	Height int

	// Seed drives Randomize. Zero draws a fresh seed from the clock.
	Seed int64

	// Workers is the number of row bands computed concurrently per advance.
	// Values below 2 advance serially.
	Workers int
}

// DefaultConfig returns an 80x64 grid, the cell count of an 800x640 view at
// ten pixels per cell.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 64, Workers: 1}
}
