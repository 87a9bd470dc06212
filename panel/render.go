package panel

import (
	"fmt"
	"time"

	"github.com/tranvictor/activity/accounts"
	"github.com/tranvictor/activity/activity"
	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/ui"
	"github.com/tranvictor/activity/util"
)

const (
	NothingInProgress = "Nothing in progress"
	LoadingText       = "Loading..."
	EmptyHistory      = "No transactions found"
	KeyHints          = "1-9,0 open in explorer   r refresh   n network   a account   esc close"
)

var HistoryHeaders = []string{"#", "Transaction", "Status", "Time", "Fee", "Hash", "Explorer"}

// View is everything a frame of the panel shows.
type View struct {
	Network networks.Network
	Account accounts.AccDesc
	History activity.Snapshot
	Now     time.Time

	// Interactive frames clear the screen first and end with key hints.
	Interactive bool
}

// Render draws one frame and returns the history rows in display order.
func Render(u ui.UI, v View) []util.Row {
	n := v.Network
	if n == nil {
		n = networks.PolkadotCoretime
	}

	if v.Interactive {
		u.Clear()
	}
	u.Section("Activity")
	account := util.Placeholder
	if v.Account.Desc != "" {
		account = v.Account.Desc
	}
	u.KeyValue([][2]string{
		{"Network", n.GetLabel()},
		{"Account", account},
		{"Address", util.Short(v.History.Address, util.DefaultShortLen)},
	})

	// nothing produces pending extrinsics yet
	u.Section("In progress")
	u.Indent().Info(NothingInProgress)

	u.Section("History")
	rows := []util.Row{}
	switch {
	case v.History.Loading:
		u.Indent().Info(LoadingText)
	case len(v.History.Items) == 0:
		u.Indent().Info(EmptyHistory)
	default:
		rows = util.NewRows(v.History.Items, n, v.Now)
		u.Table(HistoryHeaders, tableRows(u, rows))
	}
	if v.Interactive {
		u.Info("")
		u.Info(KeyHints)
	}
	return rows
}

func tableRows(u ui.UI, rows []util.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		out = append(out, []string{
			rowKey(i),
			r.Label,
			u.Style(r.Status.Styled()),
			r.When,
			r.Fee,
			r.Hash,
			r.URL,
		})
	}
	return out
}

// rowKey is the key opening row i: 1 to 9, then 0 for the tenth.
func rowKey(i int) string {
	if i == 9 {
		return "0"
	}
	return fmt.Sprintf("%d", i+1)
}

// rowIndex is the inverse of rowKey.
func rowIndex(k Key) (int, bool) {
	switch {
	case k == '0':
		return 9, true
	case k >= '1' && k <= '9':
		return int(k - '1'), true
	}
	return 0, false
}
