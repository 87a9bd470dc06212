package explorers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Extrinsic is what the explorer tells us about one extrinsic. The API is
// not trusted to be complete so every field is optional.
type Extrinsic struct {
	ExtrinsicIndex *string `json:"extrinsic_index,omitempty"`
	BlockNum       *int64  `json:"block_num,omitempty"`
	Hash           *string `json:"hash,omitempty"`
	Module         *string `json:"module,omitempty"`
	Call           *string `json:"call,omitempty"`
	Success        *bool   `json:"success,omitempty"`
	Fee            *string `json:"fee,omitempty"`
	// Time is a unix timestamp in seconds.
	Time *int64 `json:"time,omitempty"`
}

type rawExtrinsic struct {
	ExtrinsicIndex     json.RawMessage `json:"extrinsic_index"`
	BlockNum           json.RawMessage `json:"block_num"`
	Hash               json.RawMessage `json:"hash"`
	ExtrinsicHash      json.RawMessage `json:"extrinsic_hash"`
	Module             json.RawMessage `json:"module"`
	CallModule         json.RawMessage `json:"call_module"`
	Call               json.RawMessage `json:"call"`
	CallModuleFunction json.RawMessage `json:"call_module_function"`
	Success            json.RawMessage `json:"success"`
	Fee                json.RawMessage `json:"fee"`
	Time               json.RawMessage `json:"time"`
	BlockTimestamp     json.RawMessage `json:"block_timestamp"`
}

// UnmarshalJSON accepts both the short field names and the ones Subscan v2
// uses (call_module, call_module_function, block_timestamp, extrinsic_hash).
// A field of an unexpected type is dropped instead of failing the record.
func (e *Extrinsic) UnmarshalJSON(data []byte) error {
	raw := rawExtrinsic{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Extrinsic{
		ExtrinsicIndex: rawString(raw.ExtrinsicIndex),
		BlockNum:       rawInt(raw.BlockNum),
		Hash:           firstString(raw.Hash, raw.ExtrinsicHash),
		Module:         firstString(raw.Module, raw.CallModule),
		Call:           firstString(raw.Call, raw.CallModuleFunction),
		Success:        rawBool(raw.Success),
		Fee:            rawString(raw.Fee),
		Time:           rawInt(raw.Time),
	}
	if e.Time == nil {
		e.Time = rawInt(raw.BlockTimestamp)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// firstString prefers the first non empty candidate.
func firstString(candidates ...json.RawMessage) *string {
	var fallback *string
	for _, c := range candidates {
		s := rawString(c)
		if s == nil {
			continue
		}
		if *s != "" {
			return s
		}
		if fallback == nil {
			fallback = s
		}
	}
	return fallback
}

// rawString accepts a json string or a json number, kept verbatim.
func rawString(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s
	}
	return nil
}

// rawInt accepts a json integer or a string holding one.
func rawInt(raw json.RawMessage) *int64 {
	s := rawString(raw)
	if s == nil {
		return nil
	}
	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(*s, 64)
		if ferr != nil {
			return nil
		}
		n = int64(f)
	}
	return &n
}

// rawBool treats numbers as truthy when non zero.
func rawBool(raw json.RawMessage) *bool {
	if isNull(raw) {
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return &b
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		b = f != 0
		return &b
	}
	// "true", "1", "false", "0" and the other strconv spellings
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return &parsed
		}
	}
	return nil
}
