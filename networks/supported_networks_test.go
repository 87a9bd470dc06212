package networks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customNetworkJSON = `{
	"name": "hydration",
	"alternative_names": ["hdx"],
	"label": "Hydration",
	"api_base": "https://hydration.api.subscan.io/",
	"explorer_url": "https://hydration.subscan.io",
	"ss58_format": 63,
	"native_token_symbol": "HDX",
	"native_token_decimal": 12
}`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "activity-networks")
	if err != nil {
		panic(err)
	}
	CustomNetworksDir = dir
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestNewNetworkFromJSON(t *testing.T) {
	n, err := NewNetworkFromJSON([]byte(customNetworkJSON))
	require.NoError(t, err)

	assert.Equal(t, "hydration", n.GetName())
	assert.Equal(t, "https://hydration.api.subscan.io", n.GetAPIBase())
	assert.Equal(t, uint16(63), n.GetSS58Format())
	assert.Equal(t, int32(12), n.GetNativeTokenDecimal())
	assert.Equal(t, "SUBSCAN_API_KEY", n.GetBlockExplorerAPIKeyVariableName())
}

func TestNewNetworkFromJSONRejectsIncompleteConfig(t *testing.T) {
	_, err := NewNetworkFromJSON([]byte(`{"name": "x"}`))
	assert.Error(t, err)

	_, err = NewNetworkFromJSON([]byte(`{"api_base": "https://x"}`))
	assert.Error(t, err)

	_, err = NewNetworkFromJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestRegistryLoadsCustomNetworks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hydration.json"), []byte(customNetworkJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))

	reg := newSupportedNetworks(dir)

	n, err := reg.getNetwork("HDX")
	require.NoError(t, err)
	assert.Equal(t, "hydration", n.GetName())

	n, err = reg.getNetwork("kusama")
	require.NoError(t, err)
	assert.Equal(t, KusamaCoretime.GetName(), n.GetName())

	_, err = reg.getNetwork("nope")
	assert.ErrorIs(t, err, ErrNetworkNotFound)

	all := reg.getSupportedNetworks()
	require.Len(t, all, 5)
	assert.Equal(t, PolkadotCoretime.GetName(), all[0].GetName())
	assert.Equal(t, "hydration", all[4].GetName())
}

func TestRegistryAddNetworkPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "networks")
	reg := newSupportedNetworks(dir)

	n, err := NewNetworkFromJSON([]byte(customNetworkJSON))
	require.NoError(t, err)
	require.NoError(t, reg.addNetwork(n))

	content, err := os.ReadFile(filepath.Join(dir, "hydration.json"))
	require.NoError(t, err)

	reloaded, err := NewNetworkFromJSON(content)
	require.NoError(t, err)
	assert.Equal(t, n.GetAPIBase(), reloaded.GetAPIBase())

	again := newSupportedNetworks(dir)
	_, err = again.getNetwork("hydration")
	assert.NoError(t, err)
}

func TestNextWrapsAround(t *testing.T) {
	assert.Equal(t, KusamaCoretime.GetName(), Next(PolkadotCoretime).GetName())
	last := GetSupportedNetworks()[len(GetSupportedNetworks())-1]
	assert.Equal(t, GetSupportedNetworks()[0].GetName(), Next(last).GetName())
}
