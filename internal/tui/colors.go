package tui

// Color constants for the flowdeck TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#141517" // Near-black card surface
	ColorBorder         = "#2A2B31" // Grey border

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (titles, user input)
	ColorSecondaryText = "#9CA3AF" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text, out-of-month days
	ColorPlaceholder   = "#9CA3AF" // Input placeholders
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#5B5FED" // Active borders, selected cells
	ColorAccentBright = "#8B8EF5" // Highlights, headers

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#00B884" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings, over-limit

	// Column Colors (board header dots)
	ColorColumnTodo       = "#FF4A4A"
	ColorColumnInProgress = "#3E7BFA"
	ColorColumnReview     = "#5B5FED"
	ColorColumnDone       = "#00B884"
)

// PlatformColor returns the accent used for a platform badge.
func PlatformColor(platform string) string {
	switch platform {
	case "twitter":
		return "#1D9BF0"
	case "facebook":
		return "#1877F2"
	case "instagram":
		return "#C13584"
	case "linkedin":
		return "#0A66C2"
	default:
		return ColorDisabledText
	}
}

// StatusColor returns the accent used for a post status badge.
func StatusColor(status string) string {
	switch status {
	case "draft":
		return ColorWarning
	case "scheduled":
		return ColorAccentBright
	case "published":
		return ColorSuccess
	default:
		return ColorDisabledText
	}
}
