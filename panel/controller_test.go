package panel

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/activity/accounts"
	"github.com/tranvictor/activity/activity"
	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/ui"
	"github.com/tranvictor/activity/util/explorers"
)

const alice = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "activity-panel")
	if err != nil {
		panic(err)
	}
	networks.CustomNetworksDir = dir
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type fakeExplorer struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeExplorer) Extrinsics(ctx context.Context, address string, page, row int) ([]explorers.Extrinsic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, address)
	return []explorers.Extrinsic{{Hash: str("0xabc"), Success: yes()}}, nil
}

func (f *fakeExplorer) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

type fakeOpener struct {
	mu   sync.Mutex
	urls []string
}

func (o *fakeOpener) Open(url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	return nil
}

func (o *fakeOpener) URLs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string{}, o.urls...)
}

func resetGlobals(t *testing.T) {
	prevAccount, prevNetwork := accounts.Selected.Get(), networks.CurrentNetwork()
	t.Cleanup(func() {
		accounts.Selected.Set(prevAccount)
		networks.Current.Set(prevNetwork)
	})
}

func startController(t *testing.T, c *Controller) (wait func()) {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- c.Run(context.Background()) }()
	require.Eventually(t, c.Panel().IsOpen, 2*time.Second, time.Millisecond)
	return func() {
		select {
		case err := <-errc:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("controller did not stop")
		}
	}
}

func TestControllerFetchesRendersAndOpensRows(t *testing.T) {
	resetGlobals(t)
	networks.Current.Set(networks.PolkadotCoretime)
	accounts.Selected.Set(accounts.AccDesc{Address: alice, Desc: "alice"})

	explorer := &fakeExplorer{}
	history := activity.NewHistory(func(networks.Network) explorers.BlockExplorer { return explorer })
	keys := &fakeKeys{}
	opener := &fakeOpener{}
	r := ui.NewRecordingUI()
	c := NewController(r, keys, history, nil, opener)

	wait := startController(t, c)
	require.Eventually(t, func() bool { return len(explorer.Calls()) == 1 }, 2*time.Second, time.Millisecond)
	history.Wait()
	require.Eventually(t, func() bool { return r.HasMessage("0xabc") }, 2*time.Second, time.Millisecond)

	keys.Press('1')
	assert.Equal(t, []string{"https://coretime-polkadot.subscan.io/extrinsic/0xabc"}, opener.URLs())

	// rows that are not shown do nothing
	keys.Press('5')
	assert.Len(t, opener.URLs(), 1)

	keys.Press('n')
	history.Wait()
	assert.Equal(t, networks.KusamaCoretime, networks.CurrentNetwork())
	calls := explorer.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F", calls[1])

	keys.Press('r')
	history.Wait()
	assert.Len(t, explorer.Calls(), 3)

	keys.Press(KeyEscape)
	wait()
	assert.False(t, c.Panel().IsOpen())
	assert.False(t, keys.Listening())
}

func TestControllerWithoutAccountDoesNotFetch(t *testing.T) {
	resetGlobals(t)
	networks.Current.Set(networks.PolkadotCoretime)
	accounts.Selected.Set(accounts.AccDesc{})

	explorer := &fakeExplorer{}
	history := activity.NewHistory(func(networks.Network) explorers.BlockExplorer { return explorer })
	keys := &fakeKeys{}
	r := ui.NewRecordingUI()
	c := NewController(r, keys, history, nil, &fakeOpener{})

	wait := startController(t, c)
	require.Eventually(t, func() bool { return r.HasMessage(EmptyHistory) }, 2*time.Second, time.Millisecond)
	assert.Empty(t, explorer.Calls())

	// no book to cycle through
	keys.Press('a')
	assert.True(t, accounts.Selected.Get().IsZero())

	keys.Press('q')
	wait()
}

func TestControllerCyclesAccounts(t *testing.T) {
	resetGlobals(t)
	networks.Current.Set(networks.PolkadotCoretime)
	accounts.Selected.Set(accounts.AccDesc{})

	book, err := accounts.LoadBook(t.TempDir() + "/accounts.json")
	require.NoError(t, err)
	require.NoError(t, book.Add(accounts.AccDesc{Address: alice, Desc: "alice"}))

	explorer := &fakeExplorer{}
	history := activity.NewHistory(func(networks.Network) explorers.BlockExplorer { return explorer })
	keys := &fakeKeys{}
	c := NewController(ui.NewRecordingUI(), keys, history, book, &fakeOpener{})

	wait := startController(t, c)
	keys.Press('a')
	history.Wait()
	assert.Equal(t, alice, accounts.Selected.Get().Address)
	assert.Len(t, explorer.Calls(), 1)

	keys.Press(KeyInterrupt)
	wait()
}

func TestControllerStopsWithContext(t *testing.T) {
	resetGlobals(t)
	history := activity.NewHistory(func(networks.Network) explorers.BlockExplorer { return &fakeExplorer{} })
	keys := &fakeKeys{}
	c := NewController(ui.NewRecordingUI(), keys, history, nil, &fakeOpener{})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx) }()
	require.Eventually(t, c.Panel().IsOpen, 2*time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-errc)
	assert.False(t, keys.Listening())
}
