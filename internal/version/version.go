// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Date ring modes, equation of time table, southern hemisphere discs
// 0.2.0 - Constellation figures, ecliptic and galactic overlays, JSON export
// 0.1.0 - Initial release: rotating disc TUI, star catalog, headless chart modes
