package networks

var WestendCoretime Network = NewWestendCoretime()

type westendCoretime struct {
	*GenericSubscanNetwork
}

func NewWestendCoretime() *westendCoretime {
	return &westendCoretime{
		GenericSubscanNetwork: NewGenericSubscanNetwork(GenericSubscanNetworkConfig{
			Name:               "westend-coretime",
			AlternativeNames:   []string{"westend", "wnd"},
			Label:              "Westend Coretime",
			APIBase:            "https://coretime-westend.api.subscan.io",
			ExplorerURL:        "https://coretime-westend.subscan.io",
			SS58Format:         42,
			NativeTokenSymbol:  "WND",
			NativeTokenDecimal: 12,
		}),
	}
}
