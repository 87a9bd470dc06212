package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice    = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	aliceDOT = "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"
	bob      = "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"
)

func newBook(t *testing.T) *Book {
	t.Helper()
	b, err := LoadBook(filepath.Join(t.TempDir(), "accounts.json"))
	require.NoError(t, err)
	return b
}

func TestLoadBookMissingFileIsEmpty(t *testing.T) {
	b := newBook(t)
	assert.Empty(t, b.Accounts())
}

func TestAddPersistsAndReloads(t *testing.T) {
	b := newBook(t)
	require.NoError(t, b.Add(AccDesc{Address: alice, Desc: "alice main"}))
	require.NoError(t, b.Add(AccDesc{Address: bob, Desc: "bob ops"}))

	reloaded, err := LoadBook(b.Path())
	require.NoError(t, err)
	assert.Equal(t, []AccDesc{
		{Address: alice, Desc: "alice main"},
		{Address: bob, Desc: "bob ops"},
	}, reloaded.Accounts())
}

func TestAddReplacesSameKey(t *testing.T) {
	b := newBook(t)
	require.NoError(t, b.Add(AccDesc{Address: alice, Desc: "alice"}))
	require.NoError(t, b.Add(AccDesc{Address: aliceDOT, Desc: "alice on polkadot"}))

	accounts := b.Accounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, aliceDOT, accounts[0].Address)
	assert.Equal(t, "alice on polkadot", accounts[0].Desc)
}

func TestAddRejectsUndecodableAddress(t *testing.T) {
	b := newBook(t)
	assert.Error(t, b.Add(AccDesc{Address: "not-an-address", Desc: "junk"}))
	assert.Empty(t, b.Accounts())
}

func TestLoadBookSkipsBadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	content := `[{"address":"garbage","desc":"x"},{"address":"` + bob + `","desc":"bob"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	b, err := LoadBook(path)
	require.NoError(t, err)
	assert.Equal(t, []AccDesc{{Address: bob, Desc: "bob"}}, b.Accounts())
}

func TestLoadBookRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := LoadBook(path)
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	b := newBook(t)
	require.NoError(t, b.Add(AccDesc{Address: alice, Desc: "alice main"}))
	require.NoError(t, b.Add(AccDesc{Address: bob, Desc: "bob ops"}))

	acc, err := b.Find("bob ops")
	require.NoError(t, err)
	assert.Equal(t, bob, acc.Address)

	// another encoding of a known key returns the entry
	acc, err = b.Find(aliceDOT)
	require.NoError(t, err)
	assert.Equal(t, "alice main", acc.Desc)

	// an unknown but valid address is usable as is
	acc, err = b.Find("5DAAnrj7VHTznn2AWBemMuyBwZWs6FNFjdyVXUeYum3PTXFy")
	require.NoError(t, err)
	assert.Equal(t, "", acc.Desc)

	_, err = b.Find("zzzzqqq")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	_, err = b.Find(" ")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestNextWrapsAround(t *testing.T) {
	b := newBook(t)
	assert.True(t, b.Next(AccDesc{}).IsZero())

	require.NoError(t, b.Add(AccDesc{Address: alice, Desc: "a"}))
	require.NoError(t, b.Add(AccDesc{Address: bob, Desc: "b"}))

	assert.Equal(t, alice, b.Next(AccDesc{}).Address)
	assert.Equal(t, bob, b.Next(AccDesc{Address: alice}).Address)
	assert.Equal(t, alice, b.Next(AccDesc{Address: bob}).Address)
}

func TestAccDescString(t *testing.T) {
	assert.Equal(t, alice, AccDesc{Address: alice}.String())
	assert.Equal(t, "alice ("+alice+")", AccDesc{Address: alice, Desc: "alice"}.String())
}
