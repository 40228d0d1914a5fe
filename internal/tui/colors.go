package tui

// Color constants for the myday TUI theme
const (
	// Base Colors
	ColorBorder       = "#3A3F55" // Grey-blue
	ColorActiveBorder = "#7C3AED" // Focused panel

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Titles, user input
	ColorSecondaryText = "#B1B8C7" // Labels, counts
	ColorDisabledText  = "#6D7383" // Completed tasks, empty values
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Logo, selected view
	ColorAccentBright = "#A78BFA" // Highlights, headings

	// State Colors
	ColorError   = "#EF4444" // Errors, high priority, overdue
	ColorSuccess = "#22C55E" // Completed
	ColorWarning = "#F59E0B" // Medium priority, due today

	// Progress bar gradient
	ColorProgressFrom = "#7C3AED"
	ColorProgressTo   = "#22C55E"
)
