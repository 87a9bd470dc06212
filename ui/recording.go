package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string
}

// sharedState is shared by a RecordingUI and every child from Indent, so all
// of them append to one log.
type sharedState struct {
	mu      sync.Mutex
	entries []Entry
	buf     *bytes.Buffer
}

// RecordingUI implements UI for tests.
//
// All output is captured in an entry log that can be inspected with
// [RecordingUI.Entries] and [RecordingUI.HasMessage]. Table rows are
// recorded one entry each as "cell | cell | ...". It is safe for use from
// several goroutines since panels render from fetch callbacks.
type RecordingUI struct {
	shared      *sharedState
	indentLevel int
}

func NewRecordingUI() *RecordingUI {
	return &RecordingUI{
		shared: &sharedState{buf: &bytes.Buffer{}},
	}
}

func (r *RecordingUI) record(method, value string) {
	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	r.shared.entries = append(r.shared.entries, Entry{
		Method: method,
		Value:  value,
	})
}

// Style returns the plain text of t without any colour markup.
func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+": "+row[1])
	}
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	if len(headers) > 0 {
		r.record("Table", strings.Join(headers, " | "))
	}
	for _, row := range rows {
		r.record("Table", strings.Join(row, " | "))
	}
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

func (r *RecordingUI) Clear() {
	r.record("Clear", "")
}

// Indent returns a child RecordingUI sharing the same entry log.
func (r *RecordingUI) Indent() UI {
	return &RecordingUI{
		shared:      r.shared,
		indentLevel: r.indentLevel + 1,
	}
}

// Writer returns a writer that appends to the internal buffer.
func (r *RecordingUI) Writer() io.Writer {
	return lockedWriter{r.shared}
}

type lockedWriter struct {
	shared *sharedState
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.shared.mu.Lock()
	defer w.shared.mu.Unlock()
	return w.shared.buf.Write(p)
}

// --- Test helpers ---

// Entries returns a copy of all recorded UI calls in order.
func (r *RecordingUI) Entries() []Entry {
	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	return append([]Entry{}, r.shared.entries...)
}

// Since returns the entries recorded after the first n.
func (r *RecordingUI) Since(n int) []Entry {
	entries := r.Entries()
	if n >= len(entries) {
		return nil
	}
	return entries[n:]
}

// Values returns the values recorded by method, in order.
func (r *RecordingUI) Values(method string) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}

// HasMessage reports whether any recorded value contains substr, ignoring
// case.
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.Entries() {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

// Reset drops every recorded entry.
func (r *RecordingUI) Reset() {
	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	r.shared.entries = nil
	r.shared.buf.Reset()
}

// Output returns everything written to Writer() as a string.
func (r *RecordingUI) Output() string {
	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	return r.shared.buf.String()
}
