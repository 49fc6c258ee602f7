package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconDuplicate = "≈" // Almost equal (duplicate)
	IconShadow    = "→" // Right arrow (shadows an earlier directory)
	IconMissing   = "✗" // Thin X (missing or not a directory)
	IconOK        = " " // Space (OK - no icon to reduce noise)
)
