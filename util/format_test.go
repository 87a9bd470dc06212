package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/ui"
	"github.com/tranvictor/activity/util/explorers"
)

func str(s string) *string { return &s }
func i64(n int64) *int64   { return &n }
func boolean(b bool) *bool { return &b }

func TestShort(t *testing.T) {
	assert.Equal(t, "0x123456…cdef1234", Short("0x1234567890abcdef1234", 8))
	assert.Equal(t, "0xabc", Short("0xabc", 8))
	assert.Equal(t, "0123456789abcdef", Short("0123456789abcdef", 8))
	assert.Equal(t, "01234567…9abcdefg", Short("0123456789abcdefg", 8))
	assert.Equal(t, Placeholder, Short("", 8))
	assert.Equal(t, "ab…yz", Short("abcdefghijklmnopqrstuvwxyz", 2))
	assert.Equal(t, "abcdefgh…stuvwxyz", Short("abcdefghijklmnopqrstuvwxyz", 0))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *int64 { return i64(now.Add(-d).Unix()) }

	assert.Equal(t, "", RelativeTime(nil, now))
	assert.Equal(t, "", RelativeTime(i64(0), now))
	assert.Equal(t, "Just now", RelativeTime(at(0), now))
	assert.Equal(t, "Just now", RelativeTime(at(59*time.Second), now))
	assert.Equal(t, "Just now", RelativeTime(at(-time.Hour), now))
	assert.Equal(t, "1 min ago", RelativeTime(at(time.Minute), now))
	assert.Equal(t, "59 min ago", RelativeTime(at(time.Hour-time.Second), now))
	assert.Equal(t, "1h ago", RelativeTime(at(time.Hour), now))
	assert.Equal(t, "23h ago", RelativeTime(at(24*time.Hour-time.Second), now))
	assert.Equal(t, "Feb 13, 2026, 10:00 AM", RelativeTime(at(24*time.Hour), now))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusSuccess, Classify(explorers.Extrinsic{Success: boolean(true)}))
	assert.Equal(t, StatusFailed, Classify(explorers.Extrinsic{Success: boolean(false)}))
	assert.Equal(t, StatusFailed, Classify(explorers.Extrinsic{}))

	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, ui.SeverityWarn, StatusPending.Severity())
	assert.Equal(t, ui.StyledText{Text: "success", Severity: ui.SeveritySuccess}, StatusSuccess.Styled())
	assert.Equal(t, ui.SeverityError, StatusFailed.Severity())
}

func TestExplorerURLPriority(t *testing.T) {
	base := "https://coretime-kusama.subscan.io/"
	full := explorers.Extrinsic{Hash: str("0xabc"), ExtrinsicIndex: str("12-1"), BlockNum: i64(12)}

	assert.Equal(t, "https://coretime-kusama.subscan.io/extrinsic/0xabc", ExplorerURL(base, full))

	full.Hash = nil
	assert.Equal(t, "https://coretime-kusama.subscan.io/extrinsic/12-1", ExplorerURL(base, full))

	full.ExtrinsicIndex = str("")
	assert.Equal(t, "https://coretime-kusama.subscan.io/block/12", ExplorerURL(base, full))

	full.BlockNum = nil
	assert.Equal(t, "https://coretime-kusama.subscan.io", ExplorerURL(base, full))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "broker.purchase", Label(explorers.Extrinsic{Module: str("broker"), Call: str("purchase")}))
	assert.Equal(t, GenericLabel, Label(explorers.Extrinsic{Module: str("broker")}))
	assert.Equal(t, GenericLabel, Label(explorers.Extrinsic{Module: str(""), Call: str("x")}))
	assert.Equal(t, GenericLabel, Label(explorers.Extrinsic{}))
}

func TestFormatFee(t *testing.T) {
	assert.Equal(t, "0.00156 DOT", FormatFee(str("15600000"), 10, "DOT"))
	assert.Equal(t, "1 KSM", FormatFee(str("1000000000000"), 12, "KSM"))
	assert.Equal(t, "0.5", FormatFee(str("5"), 1, ""))
	assert.Equal(t, Placeholder, FormatFee(nil, 10, "DOT"))
	assert.Equal(t, Placeholder, FormatFee(str(""), 10, "DOT"))
	assert.Equal(t, Placeholder, FormatFee(str("lots"), 10, "DOT"))
}

func TestNewRow(t *testing.T) {
	now := time.Unix(1700000030, 0)
	row := NewRow(explorers.Extrinsic{
		Hash:    str("0xabc"),
		Success: boolean(true),
		Time:    i64(1700000000),
	}, networks.KusamaCoretime, now)

	assert.Equal(t, Row{
		Label:  GenericLabel,
		Status: StatusSuccess,
		When:   "Just now",
		Fee:    Placeholder,
		Hash:   "0xabc",
		URL:    "https://coretime-kusama.subscan.io/extrinsic/0xabc",
	}, row)

	long := "0x" + "1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"
	rows := NewRows([]explorers.Extrinsic{{Hash: str(long), Success: boolean(false)}, {}}, networks.PolkadotCoretime, now)
	assert.Len(t, rows, 2)
	assert.Equal(t, "0x123456…90abcdef", rows[0].Hash)
	assert.Equal(t, StatusFailed, rows[0].Status)
	assert.Equal(t, Placeholder, rows[1].Hash)
	assert.Equal(t, "https://coretime-polkadot.subscan.io", rows[1].URL)
}
