// Package panel is the interactive Activity panel: its open state, how it
// is dismissed and what it shows.
package panel

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tranvictor/activity/logger"
)

// Panel tracks whether the Activity panel is open. The key listener is
// attached only while it is open.
type Panel struct {
	keys KeySource

	mu      sync.Mutex
	open    bool
	release func()
	onClose func()
	onKey   func(Key)
}

// New returns a closed panel. onClose runs once each time an open panel is
// closed, by Escape, ctrl-c, an overlay click or Close.
func New(keys KeySource, onClose func()) *Panel {
	return &Panel{keys: keys, onClose: onClose}
}

// OnKey sets the handler for keys other than the dismissal keys.
func (p *Panel) OnKey(fn func(Key)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onKey = fn
}

func (p *Panel) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *Panel) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.open {
		return nil
	}
	release, err := p.keys.Listen(p.HandleKey)
	if err != nil {
		return err
	}
	p.release = release
	p.open = true
	logger.Debug("panel opened")
	return nil
}

// Close closes the panel and runs the close callback. Closing a closed
// panel does nothing.
func (p *Panel) Close() {
	if !p.detach() {
		return
	}
	logger.Debug("panel closed")
	if p.onClose != nil {
		p.onClose()
	}
}

// ClickOverlay dismisses the panel as a click outside it would.
func (p *Panel) ClickOverlay() {
	p.Close()
}

// HandleKey closes the panel on Escape or ctrl-c and passes every other key
// to the OnKey handler. Keys are ignored while closed.
func (p *Panel) HandleKey(k Key) {
	p.mu.Lock()
	open, onKey := p.open, p.onKey
	p.mu.Unlock()
	if !open {
		return
	}
	switch k {
	case KeyEscape, KeyInterrupt:
		p.Close()
	default:
		if onKey != nil {
			onKey(k)
		}
	}
}

// Shutdown detaches the key listener without running the close callback.
func (p *Panel) Shutdown() {
	if p.detach() {
		logger.Debug("panel shut down", zap.Bool("was_open", true))
	}
}

func (p *Panel) detach() bool {
	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return false
	}
	p.open = false
	release := p.release
	p.release = nil
	p.mu.Unlock()

	if release != nil {
		release()
	}
	return true
}
