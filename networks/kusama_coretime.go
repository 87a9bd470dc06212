package networks

var KusamaCoretime Network = NewKusamaCoretime()

type kusamaCoretime struct {
	*GenericSubscanNetwork
}

func NewKusamaCoretime() *kusamaCoretime {
	return &kusamaCoretime{
		GenericSubscanNetwork: NewGenericSubscanNetwork(GenericSubscanNetworkConfig{
			Name:               "kusama-coretime",
			AlternativeNames:   []string{"kusama", "ksm"},
			Label:              "Kusama Coretime",
			APIBase:            "https://coretime-kusama.api.subscan.io",
			ExplorerURL:        "https://coretime-kusama.subscan.io",
			SS58Format:         2,
			NativeTokenSymbol:  "KSM",
			NativeTokenDecimal: 12,
		}),
	}
}
