package oxidecompat

import "errors"

// Sentinel errors for the module's boundary failures. Nothing inside
// the checker or planner returns an error: compatibility outcomes are
// structured data, and the only true error conditions sit at the
// parsing boundaries.
var (
	// ErrManifestParse indicates an oxide.toml manifest could not be
	// parsed or converted.
	ErrManifestParse = errors.New("manifest parse error")

	// ErrGuideParse indicates a migration guide library document could
	// not be parsed.
	ErrGuideParse = errors.New("guide parse error")
)
