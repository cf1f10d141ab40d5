package config

// DisplayConfig holds settings related to what the interactive loop prints.
type DisplayConfig struct {
	// UseColour renders pieces and squares with terminal colours
	UseColour bool

	// ShowCheck reports check after every committed move
	ShowCheck bool

	// ShowBoard redraws the board after every committed move
	ShowBoard bool

	// Prompt prints "<Colour>'s turn." and "> " before reading each line
	Prompt bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		UseColour: true,
		ShowCheck: true,
		ShowBoard: true,
		Prompt:    true,
	}
}
