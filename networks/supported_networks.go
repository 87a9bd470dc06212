package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tranvictor/activity/config"
	"github.com/tranvictor/activity/logger"
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	PolkadotCoretime,
	KusamaCoretime,
	WestendCoretime,
	PaseoCoretime,
}

var (
	// CustomNetworksDir holds user supplied network json files.
	CustomNetworksDir = filepath.Join(config.HomeDir(), "networks")

	globalOnce              sync.Once
	globalSupportedNetworks *networks
)

var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	mu       sync.Mutex
	dir      string
	ordered  []Network
	networks map[string]Network
}

func global() *networks {
	globalOnce.Do(func() {
		globalSupportedNetworks = newSupportedNetworks(CustomNetworksDir)
	})
	return globalSupportedNetworks
}

func newSupportedNetworks(dir string) *networks {
	result := &networks{
		dir:      dir,
		networks: map[string]Network{},
	}
	for _, n := range supportedNetworks {
		if err := result.register(n, false); err != nil {
			panic(err)
		}
	}

	customNetworks, err := loadCustomNetworks(dir)
	if err != nil {
		logger.Warn("failed to load custom networks, continuing with built-in networks", zap.Error(err))
		return result
	}
	for _, n := range customNetworks {
		if _, found := result.networks[strings.ToLower(n.GetName())]; found {
			logger.Info("custom network overrides built-in network", zap.String("name", n.GetName()))
		}
		if err := result.register(n, true); err != nil {
			logger.Warn("skipping custom network", zap.String("name", n.GetName()), zap.Error(err))
		}
	}
	return result
}

func (n *networks) register(network Network, replace bool) error {
	names := append([]string{network.GetName()}, network.GetAlternativeNames()...)
	if !replace {
		for _, name := range names {
			if _, found := n.networks[strings.ToLower(name)]; found {
				return fmt.Errorf("network with name or alternative name of '%s' already exists", name)
			}
		}
	}
	for _, name := range names {
		n.networks[strings.ToLower(name)] = network
	}

	for i, existing := range n.ordered {
		if strings.EqualFold(existing.GetName(), network.GetName()) {
			n.ordered[i] = network
			return nil
		}
	}
	n.ordered = append(n.ordered, network)
	return nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	res, found := n.networks[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getSupportedNetworks() []Network {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Network{}, n.ordered...)
}

func (n *networks) getSupportedNetworkNames() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	res := []string{}
	for name := range n.networks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (n *networks) addNetwork(network Network) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.register(network, true); err != nil {
		return err
	}

	if err := os.MkdirAll(n.dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", n.dir, err)
	}
	content, err := network.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}
	path := filepath.Join(n.dir, fmt.Sprintf("%s.json", network.GetName()))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}
	return nil
}

func loadCustomNetworks(dir string) ([]Network, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}
	sort.Strings(files)

	networks := []Network{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		network, err := NewNetworkFromJSON(content)
		if err != nil {
			logger.Warn("failed to parse custom network, ignoring it", zap.String("file", file), zap.Error(err))
			continue
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericSubscanNetworkConfig{}
	if err := json.Unmarshal(content, &networkConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if strings.TrimSpace(networkConfig.Name) == "" {
		return nil, fmt.Errorf("network config has no name")
	}
	if strings.TrimSpace(networkConfig.APIBase) == "" {
		return nil, fmt.Errorf("network %s has no api_base", networkConfig.Name)
	}
	return NewGenericSubscanNetwork(networkConfig), nil
}

// GetSupportedNetworks returns built-in networks first, then custom ones, in
// a stable order.
func GetSupportedNetworks() []Network {
	return global().getSupportedNetworks()
}

func GetNetwork(name string) (Network, error) {
	return global().getNetwork(name)
}

func GetSupportedNetworkNames() []string {
	return global().getSupportedNetworkNames()
}

// AddNetwork registers network and stores it under CustomNetworksDir.
func AddNetwork(network Network) error {
	return global().addNetwork(network)
}

// Lookup returns the network registered under name, falling back to the
// substring based Resolve for anything not registered.
func Lookup(name string) Network {
	if n, err := GetNetwork(name); err == nil {
		return n
	}
	return Resolve(name)
}
