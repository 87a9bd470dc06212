package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tranvictor/activity/util/explorers"
)

const (
	DefaultShortLen = 8

	// Placeholder is shown for values that are missing entirely.
	Placeholder = "—"

	// AbsoluteTimeLayout is used for anything older than a day.
	AbsoluteTimeLayout = "Jan 2, 2006, 3:04 PM"

	GenericLabel = "Transaction"
)

// Short keeps the first and last n characters of s. Strings of at most 2n
// characters come back unchanged and an empty s becomes Placeholder.
func Short(s string, n int) string {
	if s == "" {
		return Placeholder
	}
	if n <= 0 {
		n = DefaultShortLen
	}
	runes := []rune(s)
	if len(runes) <= 2*n {
		return s
	}
	return string(runes[:n]) + "…" + string(runes[len(runes)-n:])
}

// RelativeTime renders a unix seconds timestamp relative to now. A missing
// or zero timestamp renders as "".
func RelativeTime(ts *int64, now time.Time) string {
	if ts == nil || *ts == 0 {
		return ""
	}
	t := time.Unix(*ts, 0)
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	}
	return t.In(now.Location()).Format(AbsoluteTimeLayout)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

// ExplorerURL links ext on the explorer site at base, preferring the hash,
// then the extrinsic index, then the block. With none of them it is the
// site root.
func ExplorerURL(base string, ext explorers.Extrinsic) string {
	base = strings.TrimRight(base, "/")
	switch {
	case nonEmpty(ext.Hash):
		return fmt.Sprintf("%s/extrinsic/%s", base, *ext.Hash)
	case nonEmpty(ext.ExtrinsicIndex):
		return fmt.Sprintf("%s/extrinsic/%s", base, *ext.ExtrinsicIndex)
	case ext.BlockNum != nil && *ext.BlockNum != 0:
		return fmt.Sprintf("%s/block/%d", base, *ext.BlockNum)
	}
	return base
}

// Label is "module.call", or GenericLabel unless both are known.
func Label(ext explorers.Extrinsic) string {
	if nonEmpty(ext.Module) && nonEmpty(ext.Call) {
		return *ext.Module + "." + *ext.Call
	}
	return GenericLabel
}

// FormatFee converts a fee in the chain's smallest unit to whole tokens.
func FormatFee(fee *string, decimals int32, symbol string) string {
	if !nonEmpty(fee) {
		return Placeholder
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*fee))
	if err != nil {
		return Placeholder
	}
	amount := d.Shift(-decimals).String()
	if symbol == "" {
		return amount
	}
	return amount + " " + symbol
}
