package util

import (
	"time"

	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/util/explorers"
)

// Row is one extrinsic ready for display.
type Row struct {
	Label  string
	Status Status
	When   string
	Fee    string
	Hash   string
	URL    string
}

func NewRow(ext explorers.Extrinsic, n networks.Network, now time.Time) Row {
	hash := ""
	if ext.Hash != nil {
		hash = *ext.Hash
	}
	return Row{
		Label:  Label(ext),
		Status: Classify(ext),
		When:   RelativeTime(ext.Time, now),
		Fee:    FormatFee(ext.Fee, n.GetNativeTokenDecimal(), n.GetNativeTokenSymbol()),
		Hash:   Short(hash, DefaultShortLen),
		URL:    ExplorerURL(n.GetExplorerURL(), ext),
	}
}

func NewRows(exts []explorers.Extrinsic, n networks.Network, now time.Time) []Row {
	rows := make([]Row, 0, len(exts))
	for _, ext := range exts {
		rows = append(rows, NewRow(ext, n, now))
	}
	return rows
}
