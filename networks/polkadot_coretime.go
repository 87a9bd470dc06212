package networks

var PolkadotCoretime Network = NewPolkadotCoretime()

type polkadotCoretime struct {
	*GenericSubscanNetwork
}

func NewPolkadotCoretime() *polkadotCoretime {
	return &polkadotCoretime{
		GenericSubscanNetwork: NewGenericSubscanNetwork(GenericSubscanNetworkConfig{
			Name:               "polkadot-coretime",
			AlternativeNames:   []string{"polkadot", "dot"},
			Label:              "Polkadot Coretime",
			APIBase:            "https://coretime-polkadot.api.subscan.io",
			ExplorerURL:        "https://coretime-polkadot.subscan.io",
			SS58Format:         0,
			NativeTokenSymbol:  "DOT",
			NativeTokenDecimal: 10,
		}),
	}
}
