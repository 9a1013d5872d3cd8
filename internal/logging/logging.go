// Package logging provides the package-level structured logger used for
// debug-level tracing inside the extraction pipeline. The pipeline is a
// single synchronous, non-suspending call (see the concurrency model in
// the specification), so logging here is deliberately sparse: it must
// never become an implicit side channel of control flow, only a trace
// of degenerate cases. Its only callers are the preprocessor's charset
// fallback paths.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the shared logger for the htmlextract module.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "htmlextract").Logger()
