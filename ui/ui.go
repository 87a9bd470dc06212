package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The print
// layer maps each value to a terminal style; data consumers (JSON, tests)
// see plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain
	SeveritySuccess                 // green
	SeverityWarn                    // yellow
	SeverityError                   // red
)

// StyledText pairs a plain string with a Severity annotation.
//
// It marshals to JSON as just the plain Text string. To render it in a
// terminal pass it to [UI.Style]:
//
//	u.Info("Status: %s", u.Style(status))
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is everything the activity commands write to the user.
//
// Production code uses TerminalUI, tests use RecordingUI which captures
// every call so assertions can be made on what would have been shown.
type UI interface {
	// Style returns t coloured according to its Severity, or the plain text
	// when colours are disabled.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== History ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with a header row followed by rows.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with msg and returns its stop
	// function:
	//
	//	stop := u.Spinner("Fetching activity...")
	//	defer stop()
	Spinner(msg string) func()

	// Clear wipes the screen so a panel can be redrawn in place.
	Clear()

	// Indent returns a child UI one level deeper sharing the same writer.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation to
	// every line.
	Writer() io.Writer
}
