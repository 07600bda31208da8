package scanner

import (
	"fmt"

	"github.com/muonsoft/runscan/internal/errors"
)

const (
	HashMap         = "hashmap"
	BoundedAlphabet = "array"
	Fold            = "fold"
	Composed        = "composed"
	Pipeline        = "pipeline"

	Default = HashMap
)

type namedStrategy struct {
	name     string
	strategy Strategy
}

var strategies = []namedStrategy{
	{name: HashMap, strategy: &hashMapStrategy{}},
	{name: BoundedAlphabet, strategy: &arrayStrategy{}},
	{name: Fold, strategy: &foldStrategy{}},
	{name: Composed, strategy: &composedStrategy{}},
	{name: Pipeline, strategy: &pipelineStrategy{}},
}

// New returns the strategy registered under name. An empty name selects Default.
func New(name string) (Strategy, error) {
	if name == "" {
		name = Default
	}

	for _, named := range strategies {
		if named.name == name {
			return named.strategy, nil
		}
	}

	return nil, errors.NewNotSupported(fmt.Sprintf("scanning strategy '%s' is not supported", name))
}

// Names lists registered strategies, canonical one first.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for _, named := range strategies {
		names = append(names, named.name)
	}

	return names
}
