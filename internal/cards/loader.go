package cards

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// cardFile is the on-disk shape of a card definition file.
type cardFile struct {
	Cards []Definition `yaml:"cards"`
}

// ParseDefinitions reads card definitions from YAML. Parsed definitions
// carry printed stats only; ability ASTs are attached by the parser
// collaborator or the built-in set.
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	var file cardFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode card file: %w", err)
	}
	for i, def := range file.Cards {
		if def.Name == "" {
			return nil, fmt.Errorf("card %d: missing name", i)
		}
		switch def.Type {
		case TypeCharacter, TypeEvent:
		default:
			return nil, fmt.Errorf("card %q: unknown type %q", def.Name, def.Type)
		}
		if def.Cost < 0 {
			return nil, fmt.Errorf("card %q: negative cost", def.Name)
		}
	}
	return file.Cards, nil
}

// LoadDefinitions reads card definitions from a YAML file on disk.
func LoadDefinitions(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card file: %w", err)
	}
	defer f.Close()
	return ParseDefinitions(f)
}

// ParseDeck reads a deck list from YAML and validates every card name
// against the registry.
func ParseDeck(r io.Reader, reg *Registry) (DeckList, error) {
	var deck DeckList
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&deck); err != nil {
		return DeckList{}, fmt.Errorf("decode deck list: %w", err)
	}
	if len(deck.Cards) == 0 {
		return DeckList{}, fmt.Errorf("deck %q is empty", deck.Name)
	}
	for _, name := range deck.Cards {
		if _, ok := reg.Get(name); !ok {
			return DeckList{}, fmt.Errorf("deck %q references unknown card %q", deck.Name, name)
		}
	}
	return deck, nil
}

// LoadDeck reads a deck list from a YAML file on disk.
func LoadDeck(path string, reg *Registry) (DeckList, error) {
	f, err := os.Open(path)
	if err != nil {
		return DeckList{}, fmt.Errorf("open deck list: %w", err)
	}
	defer f.Close()
	return ParseDeck(f, reg)
}
