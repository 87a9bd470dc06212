// Package activity keeps the panel's extrinsic history in sync with the
// selected account and network.
package activity

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tranvictor/activity/address"
	"github.com/tranvictor/activity/logger"
	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/util/explorers"
)

// Inputs are the values a fetch depends on.
type Inputs struct {
	Open bool
	// Address is the display address, "" when no account is selected.
	Address string
	Network networks.Network
}

// NewInputs derives the display address of rawAccount for n. An account
// that cannot be encoded for n is treated as no account.
func NewInputs(open bool, rawAccount string, n networks.Network) Inputs {
	if n == nil {
		n = networks.PolkadotCoretime
	}
	addr, _ := address.Derive(rawAccount, n.GetSS58Format())
	return Inputs{Open: open, Address: addr, Network: n}
}

func endpoint(n networks.Network) string {
	if n == nil {
		return ""
	}
	return n.GetAPIBase()
}

func (in Inputs) same(other Inputs) bool {
	return in.Open == other.Open &&
		in.Address == other.Address &&
		endpoint(in.Network) == endpoint(other.Network)
}

// Snapshot is the observable state of a History.
type Snapshot struct {
	Loading bool
	Items   []explorers.Extrinsic
	Address string
	Network networks.Network
}

// ExplorerFactory returns the explorer serving n.
type ExplorerFactory func(n networks.Network) explorers.BlockExplorer

// History fetches the latest extrinsics of the display address whenever
// its inputs change while open.
//
// Only the newest fetch may write the result: each fetch gets a generation
// number and a cancellable context, a new trigger cancels the previous fetch
// and a fetch finishing with a stale generation is discarded.
type History struct {
	newExplorer ExplorerFactory
	pageSize    int

	mu     sync.Mutex
	inputs Inputs
	state  Snapshot
	gen    uint64
	cancel context.CancelFunc
	subs   map[int]func(Snapshot)
	nextID int

	wg sync.WaitGroup
}

func NewHistory(factory ExplorerFactory) *History {
	return &History{
		newExplorer: factory,
		pageSize:    explorers.DefaultPageSize,
		state:       Snapshot{Items: []explorers.Extrinsic{}},
		subs:        map[int]func(Snapshot){},
	}
}

// Subscribe calls fn after every state change until the returned func is
// called. fn may run on a fetch goroutine.
func (h *History) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

func (h *History) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *History) snapshotLocked() Snapshot {
	s := h.state
	s.Items = append([]explorers.Extrinsic{}, h.state.Items...)
	return s
}

// Update records in and starts a fetch when the panel is open and the
// open state, address or endpoint changed. Closing cancels any fetch in
// flight.
func (h *History) Update(ctx context.Context, in Inputs) {
	h.mu.Lock()
	changed := !h.inputs.same(in)
	h.inputs = in
	if !changed {
		h.mu.Unlock()
		return
	}
	if !in.Open {
		wasLoading := h.state.Loading
		h.supersedeLocked()
		h.state.Loading = false
		if !wasLoading {
			h.mu.Unlock()
			return
		}
		h.publishLocked()
		return
	}
	h.triggerLocked(ctx)
}

// Refresh refetches with the current inputs if the panel is open.
func (h *History) Refresh(ctx context.Context) {
	h.mu.Lock()
	if !h.inputs.Open {
		h.mu.Unlock()
		return
	}
	h.triggerLocked(ctx)
}

// Wait blocks until every fetch started so far has finished.
func (h *History) Wait() {
	h.wg.Wait()
}

// Close cancels any fetch in flight, clears loading and waits for the fetch
// to return.
func (h *History) Close() {
	h.mu.Lock()
	h.supersedeLocked()
	if h.state.Loading {
		h.state.Loading = false
		h.publishLocked()
	} else {
		h.mu.Unlock()
	}
	h.wg.Wait()
}

func (h *History) supersedeLocked() {
	h.gen++
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// triggerLocked is entered with h.mu held and releases it.
func (h *History) triggerLocked(ctx context.Context) {
	h.supersedeLocked()
	in := h.inputs
	h.state.Address = in.Address
	h.state.Network = in.Network

	if in.Address == "" {
		h.state.Items = []explorers.Extrinsic{}
		h.state.Loading = false
		h.publishLocked()
		return
	}

	fctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.state.Loading = true
	gen := h.gen
	explorer := h.newExplorer(in.Network)
	h.wg.Add(1)
	go h.run(fctx, cancel, gen, explorer, in)
	h.publishLocked()
}

// publishLocked is entered with h.mu held and releases it before calling
// subscribers.
func (h *History) publishLocked() {
	snap := h.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func (h *History) run(ctx context.Context, cancel context.CancelFunc, gen uint64, explorer explorers.BlockExplorer, in Inputs) {
	defer h.wg.Done()
	defer cancel()

	fetchID := uuid.NewString()
	log := logger.Log.WithOptions(zap.AddCallerSkip(-1)).With(
		zap.String("fetch_id", fetchID),
		zap.String("address", in.Address),
		zap.String("api", endpoint(in.Network)),
	)

	items := []explorers.Extrinsic{}
	defer func() {
		if r := recover(); r != nil {
			log.Error("extrinsics fetch panicked", zap.String("panic", fmt.Sprint(r)))
			items = []explorers.Extrinsic{}
		}
		h.finish(gen, items, log)
	}()

	log.Debug("fetching extrinsics")
	fetched, err := explorer.Extrinsics(ctx, in.Address, 0, h.pageSize)
	if err != nil {
		if ctx.Err() != nil {
			log.Debug("extrinsics fetch cancelled", zap.Error(err))
			return
		}
		log.Warn("failed to fetch extrinsics", zap.Error(err))
		return
	}
	if fetched != nil {
		items = fetched
	}
}

// finish publishes the result of fetch gen unless a newer fetch or a close
// superseded it. It runs exactly once per fetch.
func (h *History) finish(gen uint64, items []explorers.Extrinsic, log *zap.Logger) {
	h.mu.Lock()
	if gen != h.gen {
		h.mu.Unlock()
		log.Debug("discarding superseded extrinsics fetch")
		return
	}
	h.cancel = nil
	h.state.Loading = false
	h.state.Items = items
	h.publishLocked()
}
