package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Popup PopupConfig
	Input InputConfig
	Text  TextConfig
}

// PopupConfig holds dimensions of the reading list popup.
type PopupConfig struct {
	// HeightReduction is subtracted from terminal height for the list.
	// Accounts for: app padding (1) + header (2) + status (1) + help bar (3) = 7
	HeightReduction int

	// MinHeight is the minimum number of list rows.
	MinHeight int

	// MaxWidth caps the popup width on wide terminals.
	MaxWidth int

	// MinWidth is the narrowest popup rendered.
	MinWidth int

	// ContentPadding is subtracted from popup width for row rendering.
	// Accounts for app padding: left=2, right=2
	ContentPadding int

	// ItemIndent is the indentation of articles below their day header.
	ItemIndent int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	FilterCharLimit int
	FilterWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Popup: PopupConfig{
			HeightReduction: 7, // app padding (1) + header (2) + status (1) + help bar (3)
			MinHeight:       3,
			MaxWidth:        100,
			MinWidth:        30,
			ContentPadding:  4,
			ItemIndent:      4,
		},
		Input: InputConfig{
			FilterCharLimit: 50,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
