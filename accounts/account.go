// Package accounts keeps the local address book and the account the panel
// shows activity for.
package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/tranvictor/activity/address"
	"github.com/tranvictor/activity/config"
	"github.com/tranvictor/activity/logger"
	"github.com/tranvictor/activity/util/observe"
)

var ErrAccountNotFound = errors.New("account not found")

// AccDesc is an address book entry. Address is kept as entered.
type AccDesc struct {
	Address string `json:"address"`
	Desc    string `json:"desc"`
}

func (a AccDesc) IsZero() bool {
	return a.Address == ""
}

// Selected is the account the panel shows. The zero AccDesc means none.
var Selected = observe.NewValue(AccDesc{})

// BookPath is where the default address book is stored.
func BookPath() string {
	return filepath.Join(config.HomeDir(), "accounts.json")
}

type Book struct {
	mu       sync.Mutex
	path     string
	accounts []AccDesc
}

// LoadBook reads the book at path. A missing file is an empty book.
func LoadBook(path string) (*Book, error) {
	b := &Book{path: path, accounts: []AccDesc{}}
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading address book %s", path)
	}
	descs := []AccDesc{}
	if err := json.Unmarshal(content, &descs); err != nil {
		return nil, errors.Wrapf(err, "parsing address book %s", path)
	}
	for _, d := range descs {
		if !address.Valid(d.Address) {
			logger.Warn("skipping undecodable address book entry",
				zap.String("address", d.Address),
				zap.String("desc", d.Desc),
			)
			continue
		}
		b.accounts = append(b.accounts, d)
	}
	return b, nil
}

func (b *Book) Path() string {
	return b.path
}

// Accounts returns the entries sorted by description.
func (b *Book) Accounts() []AccDesc {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := append([]AccDesc{}, b.accounts...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Desc < result[j].Desc
	})
	return result
}

// Add inserts acc or replaces the description of an entry with the same
// public key, then saves the book.
func (b *Book) Add(acc AccDesc) error {
	acc.Address = strings.TrimSpace(acc.Address)
	acc.Desc = strings.TrimSpace(acc.Desc)
	pub, err := address.PublicKey(acc.Address)
	if err != nil {
		return errors.Wrapf(err, "adding %q", acc.Address)
	}

	b.mu.Lock()
	replaced := false
	for i, existing := range b.accounts {
		if other, err := address.PublicKey(existing.Address); err == nil && string(other) == string(pub) {
			b.accounts[i] = acc
			replaced = true
			break
		}
	}
	if !replaced {
		b.accounts = append(b.accounts, acc)
	}
	b.mu.Unlock()
	return b.Save()
}

func (b *Book) Save() error {
	b.mu.Lock()
	content, err := json.MarshalIndent(b.accounts, "", "  ")
	b.mu.Unlock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(b.path), os.ModePerm); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(b.path))
	}
	return os.WriteFile(b.path, content, 0644)
}

// Find returns the entry for hint. A decodable hint is matched against the
// entries by public key, and when none matches it is returned as an
// undescribed account. Anything else is fuzzy matched against
// "address_description".
func (b *Book) Find(hint string) (AccDesc, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return AccDesc{}, ErrAccountNotFound
	}
	accounts := b.Accounts()
	if pub, err := address.PublicKey(hint); err == nil {
		for _, acc := range accounts {
			if other, err := address.PublicKey(acc.Address); err == nil && string(other) == string(pub) {
				return acc, nil
			}
		}
		return AccDesc{Address: hint}, nil
	}

	source := FuzzySource(accounts)
	matches := fuzzy.FindFrom(strings.Replace(hint, " ", "_", -1), source)
	if len(matches) == 0 {
		return AccDesc{}, errors.Wrapf(ErrAccountNotFound, "no account matches '%s'", hint)
	}
	return source[matches[0].Index], nil
}

// Next returns the entry after current, wrapping around. It returns the
// zero AccDesc when the book is empty.
func (b *Book) Next(current AccDesc) AccDesc {
	accounts := b.Accounts()
	if len(accounts) == 0 {
		return AccDesc{}
	}
	for i, acc := range accounts {
		if acc.Address == current.Address {
			return accounts[(i+1)%len(accounts)]
		}
	}
	return accounts[0]
}

func (a AccDesc) String() string {
	if a.Desc == "" {
		return a.Address
	}
	return fmt.Sprintf("%s (%s)", a.Desc, a.Address)
}
