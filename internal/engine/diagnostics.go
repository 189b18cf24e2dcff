package engine

import "log"

// Diagnostics receives anomaly reports the search encounters but does not
// abort for — currently just MVV-LVA board-contract violations (spec.md §7,
// §9's "replace ad-hoc guards with a tagged result" redesign note). The
// default sink logs at critical severity; tests can inject a no-op or
// recording sink instead of asserting against stderr.
type Diagnostics interface {
	Anomaly(message string)
}

// logDiagnostics logs anomalies via the standard logger, matching the rest
// of the package's use of log.Printf in place of a structured-logging
// dependency the teacher codebase never reaches for either.
type logDiagnostics struct{}

func (logDiagnostics) Anomaly(message string) {
	log.Printf("[engine] CRITICAL: %s", message)
}

// diagnosticsSink is the process-wide default; SetDiagnostics lets a caller
// (or a test) replace it.
var diagnosticsSink Diagnostics = logDiagnostics{}

// SetDiagnostics installs the sink that receives anomaly reports. Passing
// nil restores the default logging sink.
func SetDiagnostics(d Diagnostics) {
	if d == nil {
		d = logDiagnostics{}
	}
	diagnosticsSink = d
}

func reportAnomaly(message string) {
	diagnosticsSink.Anomaly(message)
}
