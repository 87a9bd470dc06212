package panel

import (
	"os"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tranvictor/activity/logger"
)

// Key is a single key press. Printable keys are their rune.
type Key rune

const (
	KeyInterrupt Key = 0x03 // ctrl-c, delivered as a byte in raw mode
	KeyEscape    Key = 0x1b
)

// KeySource delivers key presses to fn until release is called.
type KeySource interface {
	Listen(fn func(Key)) (release func(), err error)
}

// TerminalKeys reads keys from a terminal. While a listener is attached the
// terminal is in raw mode so single key presses arrive without Enter.
type TerminalKeys struct {
	in *os.File

	mu      sync.Mutex
	handler func(Key)
	state   *term.State
	reading bool
}

func NewTerminalKeys(in *os.File) *TerminalKeys {
	return &TerminalKeys{in: in}
}

func (t *TerminalKeys) Listen(fn func(Key)) (func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fd := int(t.in.Fd())
	if t.state == nil && term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, errors.Wrap(err, "entering raw mode")
		}
		t.state = state
	}
	t.handler = fn
	// os.File reads cannot be interrupted, so one reader serves every
	// listener for the life of the process.
	if !t.reading {
		t.reading = true
		go t.read()
	}

	var once sync.Once
	return func() { once.Do(t.release) }, nil
}

func (t *TerminalKeys) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = nil
	if t.state != nil {
		if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
			logger.Warn("failed to restore terminal", zap.Error(err))
		}
		t.state = nil
	}
}

func (t *TerminalKeys) read() {
	buf := make([]byte, 64)
	for {
		n, err := t.in.Read(buf)
		for _, k := range decodeKeys(buf[:n]) {
			t.dispatch(k)
		}
		if err != nil {
			logger.Debug("key reader stopped", zap.Error(err))
			return
		}
	}
}

func (t *TerminalKeys) dispatch(k Key) {
	t.mu.Lock()
	fn := t.handler
	t.mu.Unlock()
	if fn != nil {
		fn(k)
	}
}

// decodeKeys splits one read into keys. ESC followed by '[' or 'O' starts
// a CSI or SS3 sequence (arrows, function keys) and the read is dropped.
// Any other ESC is Escape, even when more keys arrive in the same read.
func decodeKeys(b []byte) []Key {
	if len(b) > 1 && b[0] == byte(KeyEscape) && (b[1] == '[' || b[1] == 'O') {
		return nil
	}
	keys := make([]Key, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		keys = append(keys, Key(r))
		b = b[size:]
	}
	return keys
}
