package panel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tranvictor/activity/accounts"
	"github.com/tranvictor/activity/activity"
	"github.com/tranvictor/activity/logger"
	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/ui"
	"github.com/tranvictor/activity/util"
)

// Controller runs an interactive panel: it feeds the selected account and
// network to the history fetcher, redraws on every change and maps keys to
// actions.
type Controller struct {
	ui      ui.UI
	panel   *Panel
	history *activity.History
	book    *accounts.Book
	opener  Opener
	now     func() time.Time

	ctx       context.Context
	mu        sync.Mutex
	rows      []util.Row
	unsubs    []func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewController wires a panel reading keys from keys. book may be nil, in
// which case the account cannot be cycled.
func NewController(u ui.UI, keys KeySource, history *activity.History, book *accounts.Book, opener Opener) *Controller {
	c := &Controller{
		ui:      u,
		history: history,
		book:    book,
		opener:  opener,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	c.panel = New(keys, c.closed)
	c.panel.OnKey(c.handleKey)
	return c
}

func (c *Controller) Panel() *Panel {
	return c.panel
}

// Run opens the panel and blocks until it is dismissed or ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	c.ctx = ctx
	c.unsubs = append(c.unsubs,
		accounts.Selected.Subscribe(func(accounts.AccDesc) { c.update() }),
		networks.Current.Subscribe(func(networks.Network) { c.update() }),
		c.history.Subscribe(func(activity.Snapshot) { c.render() }),
	)
	defer c.shutdown()

	if err := c.panel.Open(); err != nil {
		return err
	}
	c.update()

	select {
	case <-c.done:
	case <-ctx.Done():
	}
	return nil
}

func (c *Controller) shutdown() {
	for _, unsubscribe := range c.unsubs {
		unsubscribe()
	}
	c.unsubs = nil
	c.panel.Shutdown()
	c.history.Close()
}

func (c *Controller) closed() {
	c.update()
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Controller) inputs() activity.Inputs {
	return activity.NewInputs(
		c.panel.IsOpen(),
		accounts.Selected.Get().Address,
		networks.CurrentNetwork(),
	)
}

func (c *Controller) update() {
	c.history.Update(c.ctx, c.inputs())
	c.render()
}

func (c *Controller) render() {
	if !c.panel.IsOpen() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = Render(c.ui, View{
		Network: networks.CurrentNetwork(),
		Account: accounts.Selected.Get(),
		History: c.history.Snapshot(),
		Now:     c.now(),

		Interactive: true,
	})
}

func (c *Controller) handleKey(k Key) {
	if i, ok := rowIndex(k); ok {
		c.openRow(i)
		return
	}
	switch k {
	case 'r':
		c.history.Refresh(c.ctx)
	case 'n':
		networks.Current.Set(networks.Next(networks.CurrentNetwork()))
	case 'a':
		if c.book == nil {
			return
		}
		next := c.book.Next(accounts.Selected.Get())
		if !next.IsZero() {
			accounts.Selected.Set(next)
		}
	case 'q':
		c.panel.Close()
	}
}

func (c *Controller) openRow(i int) {
	c.mu.Lock()
	if i >= len(c.rows) {
		c.mu.Unlock()
		return
	}
	url := c.rows[i].URL
	c.mu.Unlock()

	if err := c.opener.Open(url); err != nil {
		logger.Warn("failed to open explorer", zap.String("url", url), zap.Error(err))
	}
}
