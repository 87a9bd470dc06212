package networks

import (
	"fmt"
	"strings"
)

// Identifier is the object form of a network selection as it comes from
// wallet state: either field may be empty.
type Identifier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Resolve maps an opaque network selection to one of the built-in networks.
// Matching is a case-insensitive substring test in fixed priority order:
// kusama, westend, paseo. Anything else, including nil, resolves to
// PolkadotCoretime.
func Resolve(id any) Network {
	text := strings.ToLower(identifierText(id))
	switch {
	case strings.Contains(text, "kusa"):
		return KusamaCoretime
	case strings.Contains(text, "west"):
		return WestendCoretime
	case strings.Contains(text, "pase"):
		return PaseoCoretime
	}
	return PolkadotCoretime
}

func identifierText(id any) (text string) {
	// a typed nil pointer behind an interface must not take the caller down
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case Identifier:
		return v.ID + " " + v.Name
	case *Identifier:
		if v == nil {
			return ""
		}
		return v.ID + " " + v.Name
	}

	parts := []string{}
	if g, ok := id.(interface{ GetID() string }); ok {
		parts = append(parts, g.GetID())
	}
	if g, ok := id.(interface{ GetName() string }); ok {
		parts = append(parts, g.GetName())
	}
	if len(parts) == 0 {
		if s, ok := id.(fmt.Stringer); ok {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, " ")
}
