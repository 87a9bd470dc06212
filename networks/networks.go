package networks

import (
	"go.uber.org/zap"

	"github.com/tranvictor/activity/logger"
	"github.com/tranvictor/activity/util/observe"
)

// Current is the network the wallet is pointed at. It is owned by whoever
// handles network selection; everything else only observes it.
var Current = observe.NewValue[Network](PolkadotCoretime)

func CurrentNetwork() Network {
	return Current.Get()
}

// SetNetwork switches Current to the network named by networkStr and
// returns it.
func SetNetwork(networkStr string) Network {
	n := Lookup(networkStr)
	prev := Current.Get()
	Current.Set(n)
	if prev.GetName() != n.GetName() {
		logger.Info("switched network", zap.String("network", n.GetName()))
	}
	return n
}

// Next returns the supported network following n, wrapping around.
func Next(n Network) Network {
	all := GetSupportedNetworks()
	if len(all) == 0 {
		return n
	}
	for i, candidate := range all {
		if candidate.GetName() == n.GetName() {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
