package models

// Severity tiers for user-facing notices.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is the title/message/severity triad every failure and
// informational condition is surfaced as. There is no process exit code:
// the dashboard shows these, the view keeps its last-good state.
type Notice struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// TransportNotice reports a failed or non-success upstream fetch.
func TransportNotice(msg string) Notice {
	return Notice{Title: "Connection problem", Message: msg, Severity: SeverityError}
}

// EmptyResultNotice reports zero matching records. Not an error.
func EmptyResultNotice(msg string) Notice {
	return Notice{Title: "Nothing to show", Message: msg, Severity: SeverityInfo}
}

// NotFoundNotice reports an unknown unit in tracking mode. The dashboard
// shows an informational banner, not an error one.
func NotFoundNotice(msg string) Notice {
	return Notice{Title: "Unit not found", Message: msg, Severity: SeverityInfo}
}

// LocateNotice reports a geolocation fault with a cause-specific message.
func LocateNotice(msg string) Notice {
	return Notice{Title: "Position unavailable", Message: msg, Severity: SeverityWarning}
}
