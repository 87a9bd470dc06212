package panel

import (
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

func str(s string) *string { return &s }
func i64(v int64) *int64   { return &v }
func yes() *bool           { b := true; return &b }

var now = time.Unix(1_700_000_000, 0)

func TestRenderWithoutAccount(t *testing.T) {
	r := ui.NewRecordingUI()
	rows := Render(r, View{
		Network: networks.KusamaCoretime,
		History: activity.Snapshot{},
		Now:     now,
	})

	assert.Empty(t, rows)
	assert.Equal(t, []string{"Activity", "In progress", "History"}, r.Values("Section"))
	assert.Equal(t, []string{
		"Network: Kusama Coretime",
		"Account: —",
		"Address: —",
	}, r.Values("KeyValue"))
	assert.True(t, r.HasMessage(NothingInProgress))
	assert.True(t, r.HasMessage(EmptyHistory))
	assert.Empty(t, r.Values("Table"))
}

func TestRenderLoading(t *testing.T) {
	r := ui.NewRecordingUI()
	Render(r, View{
		Network: networks.PolkadotCoretime,
		History: activity.Snapshot{Loading: true, Address: "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"},
		Now:     now,
	})

	assert.True(t, r.HasMessage(LoadingText))
	assert.False(t, r.HasMessage(EmptyHistory))
	assert.Contains(t, r.Values("KeyValue"), "Address: 15oF4uVJ…MNHr6Sp5")
}

func TestRenderHistoryTable(t *testing.T) {
	r := ui.NewRecordingUI()
	rows := Render(r, View{
		Network: networks.PolkadotCoretime,
		Account: accounts.AccDesc{Address: "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", Desc: "alice"},
		History: activity.Snapshot{
			Address: "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5",
			Items: []explorers.Extrinsic{
				{
					Hash:    str("0x1234567890abcdef1234567890abcdef"),
					Module:  str("balances"),
					Call:    str("transfer_keep_alive"),
					Success: yes(),
					Fee:     str("158000000"),
					Time:    i64(now.Unix() - 120),
				},
				{ExtrinsicIndex: str("100-2")},
			},
		},
		Now: now,
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "https://coretime-polkadot.subscan.io/extrinsic/100-2", rows[1].URL)
	assert.Contains(t, r.Values("KeyValue"), "Account: alice")
	assert.Equal(t, []string{
		"# | Transaction | Status | Time | Fee | Hash | Explorer",
		"1 | balances.transfer_keep_alive | success | 2 min ago | 0.0158 DOT | 0x123456…90abcdef | https://coretime-polkadot.subscan.io/extrinsic/0x1234567890abcdef1234567890abcdef",
		"2 | Transaction | failed |  | — | — | https://coretime-polkadot.subscan.io/extrinsic/100-2",
	}, r.Values("Table"))
}

func TestRenderInteractiveAddsHints(t *testing.T) {
	r := ui.NewRecordingUI()
	Render(r, View{Network: networks.PolkadotCoretime, Now: now, Interactive: true})
	assert.Len(t, r.Values("Clear"), 1)
	assert.True(t, r.HasMessage(KeyHints))

	r.Reset()
	Render(r, View{Network: networks.PolkadotCoretime, Now: now})
	assert.Empty(t, r.Values("Clear"))
	assert.False(t, r.HasMessage(KeyHints))
}
