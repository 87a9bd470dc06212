package explorers

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tranvictor/activity/logger"
)

const (
	ExtrinsicsPath = "/api/v2/scan/extrinsics"
	APIKeyHeader   = "X-API-Key"
)

type SubscanExplorer struct {
	APIBase string
	APIKey  string

	client *resty.Client
}

// NewSubscanExplorer returns a client for the Subscan instance at apiBase.
// A zero timeout means requests are never cut short.
func NewSubscanExplorer(apiBase string, apiKey string, timeout time.Duration) *SubscanExplorer {
	apiBase = strings.TrimRight(apiBase, "/")
	client := resty.New().
		SetBaseURL(apiBase).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &SubscanExplorer{
		APIBase: apiBase,
		APIKey:  apiKey,
		client:  client,
	}
}

type extrinsicsRequest struct {
	Row     int    `json:"row"`
	Page    int    `json:"page"`
	Address string `json:"address"`
}

func (se *SubscanExplorer) ExtrinsicsAPIURL() string {
	return se.APIBase + ExtrinsicsPath
}

func (se *SubscanExplorer) Extrinsics(ctx context.Context, address string, page, row int) ([]Extrinsic, error) {
	if se.APIKey == "" {
		logger.Warn("subscan api key is not set, the request will likely be rejected",
			zap.String("url", se.ExtrinsicsAPIURL()))
	}

	req := se.client.R().
		SetContext(ctx).
		SetBody(extrinsicsRequest{Row: row, Page: page, Address: address})
	if se.APIKey != "" {
		req.SetHeader(APIKeyHeader, se.APIKey)
	}
	resp, err := req.Post(ExtrinsicsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "post %s", se.ExtrinsicsAPIURL())
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{
			URL:  se.ExtrinsicsAPIURL(),
			Code: resp.StatusCode(),
			Body: strings.TrimSpace(string(resp.Body())),
		}
	}
	return ParseExtrinsics(resp.Body())
}

type subscanResponse struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ParseExtrinsics extracts the extrinsic list from a Subscan response body.
// Two shapes exist in the wild: data.list (preferred) and data.extrinsics.
// When neither is an array the result is an empty list, not an error.
func ParseExtrinsics(body []byte) ([]Extrinsic, error) {
	resp := subscanResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "decode subscan response")
	}
	if resp.Code != nil && *resp.Code != 0 {
		return nil, &APIError{Code: *resp.Code, Message: resp.Message}
	}

	data := struct {
		List       json.RawMessage `json:"list"`
		Extrinsics json.RawMessage `json:"extrinsics"`
	}{}
	if isNull(resp.Data) || json.Unmarshal(resp.Data, &data) != nil {
		return []Extrinsic{}, nil
	}
	for _, candidate := range []json.RawMessage{data.List, data.Extrinsics} {
		if items, ok := decodeList(candidate); ok {
			return items, nil
		}
	}
	return []Extrinsic{}, nil
}

// decodeList decodes raw if it is a json array. Elements that are not
// objects are skipped.
func decodeList(raw json.RawMessage) ([]Extrinsic, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	elems := []json.RawMessage{}
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	items := make([]Extrinsic, 0, len(elems))
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			continue
		}
		ext := Extrinsic{}
		if err := json.Unmarshal(elem, &ext); err != nil {
			continue
		}
		items = append(items, ext)
	}
	return items, true
}
