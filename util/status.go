package util

import (
	"github.com/tranvictor/activity/ui"
	"github.com/tranvictor/activity/util/explorers"
)

type Status uint8

const (
	// StatusPending is reserved for submitted but unconfirmed extrinsics.
	// The explorer only reports included ones, so Classify never returns it
	// and the "In progress" section stays empty for now.
	StatusPending Status = iota
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	default:
		return "failed"
	}
}

func (s Status) Severity() ui.Severity {
	switch s {
	case StatusPending:
		return ui.SeverityWarn
	case StatusSuccess:
		return ui.SeveritySuccess
	default:
		return ui.SeverityError
	}
}

func (s Status) Styled() ui.StyledText {
	return ui.StyledText{Text: s.String(), Severity: s.Severity()}
}

// Classify reports success only when the success flag is present and true.
func Classify(ext explorers.Extrinsic) Status {
	if ext.Success != nil && *ext.Success {
		return StatusSuccess
	}
	return StatusFailed
}
