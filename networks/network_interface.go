package networks

// Network describes a chain indexed by a Subscan explorer.
type Network interface {
	GetName() string
	GetAlternativeNames() []string
	GetLabel() string

	// GetAPIBase is the Subscan API root, e.g. https://coretime-kusama.api.subscan.io
	GetAPIBase() string
	// GetExplorerURL is the human facing explorer site root.
	GetExplorerURL() string
	GetSS58Format() uint16

	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() int32

	GetBlockExplorerAPIKeyVariableName() string

	MarshalJSON() ([]byte, error)
}
