package networks

import (
	"encoding/json"
	"strings"
)

type GenericSubscanNetworkConfig struct {
	Name                            string   `json:"name"`
	AlternativeNames                []string `json:"alternative_names"`
	Label                           string   `json:"label"`
	APIBase                         string   `json:"api_base"`
	ExplorerURL                     string   `json:"explorer_url"`
	SS58Format                      uint16   `json:"ss58_format"`
	NativeTokenSymbol               string   `json:"native_token_symbol"`
	NativeTokenDecimal              int32    `json:"native_token_decimal"`
	BlockExplorerAPIKeyVariableName string   `json:"block_explorer_api_key_variable_name"`
}

// GenericSubscanNetwork is a network whose whole behaviour is described by
// its config, which makes it loadable from a json file.
type GenericSubscanNetwork struct {
	config GenericSubscanNetworkConfig
}

func NewGenericSubscanNetwork(config GenericSubscanNetworkConfig) *GenericSubscanNetwork {
	config.APIBase = strings.TrimRight(config.APIBase, "/")
	config.ExplorerURL = strings.TrimRight(config.ExplorerURL, "/")
	if config.Label == "" {
		config.Label = config.Name
	}
	if config.AlternativeNames == nil {
		config.AlternativeNames = []string{}
	}
	if config.BlockExplorerAPIKeyVariableName == "" {
		config.BlockExplorerAPIKeyVariableName = "SUBSCAN_API_KEY"
	}
	return &GenericSubscanNetwork{config: config}
}

func (gn *GenericSubscanNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericSubscanNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericSubscanNetwork) GetLabel() string {
	return gn.config.Label
}

func (gn *GenericSubscanNetwork) GetAPIBase() string {
	return gn.config.APIBase
}

func (gn *GenericSubscanNetwork) GetExplorerURL() string {
	return gn.config.ExplorerURL
}

func (gn *GenericSubscanNetwork) GetSS58Format() uint16 {
	return gn.config.SS58Format
}

func (gn *GenericSubscanNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericSubscanNetwork) GetNativeTokenDecimal() int32 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericSubscanNetwork) GetBlockExplorerAPIKeyVariableName() string {
	return gn.config.BlockExplorerAPIKeyVariableName
}

func (gn *GenericSubscanNetwork) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(gn.config, "", "  ")
}
