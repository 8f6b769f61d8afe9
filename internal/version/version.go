// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Frame graph with CIO and equinox chains, TEME, IAU body-fixed frames, matrix inspector
// 0.2.0 - IERS finals ingestion, spline EOP provider, leap second kernels, -eop/-lsk flags
// 0.1.0 - Initial release: femtosecond time scales, TUI clock, headless modes
