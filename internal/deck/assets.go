package deck

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed decks/*.yaml
var deckFS embed.FS

var deckCache sync.Map

// BuiltinNames lists the bundled decks in presentation order.
func BuiltinNames() []string {
	return []string{"rag", "finetuning", "quality"}
}

// Builtin returns a bundled deck by name.
func Builtin(name string) (*Deck, error) {
	if cached, ok := deckCache.Load(name); ok {
		return cached.(*Deck), nil
	}
	data, err := deckFS.ReadFile("decks/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown builtin deck %q", name)
	}
	parsed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("builtin deck %q: %w", name, err)
	}
	deckCache.Store(name, parsed)
	return parsed, nil
}

// MustBuiltin returns a bundled deck or panics. Bundled decks are validated
// by tests, so a failure here is a packaging bug.
func MustBuiltin(name string) *Deck {
	loaded, err := Builtin(name)
	if err != nil {
		panic(err)
	}
	return loaded
}
