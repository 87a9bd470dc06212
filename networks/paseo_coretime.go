package networks

var PaseoCoretime Network = NewPaseoCoretime()

type paseoCoretime struct {
	*GenericSubscanNetwork
}

func NewPaseoCoretime() *paseoCoretime {
	return &paseoCoretime{
		GenericSubscanNetwork: NewGenericSubscanNetwork(GenericSubscanNetworkConfig{
			Name:               "paseo-coretime",
			AlternativeNames:   []string{"paseo", "pas"},
			Label:              "Paseo Coretime",
			APIBase:            "https://coretime-paseo.api.subscan.io",
			ExplorerURL:        "https://coretime-paseo.subscan.io",
			SS58Format:         0,
			NativeTokenSymbol:  "PAS",
			NativeTokenDecimal: 10,
		}),
	}
}
