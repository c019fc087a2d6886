package fizzbuzz

import (
	"fmt"
	"sort"
)

// Classifier maps an integer to its label.
type Classifier func(n int) string

// Strategy names accepted by ParseStrategy.
const (
	StrategyCosine = "cosine"
	StrategyRules  = "rules"
)

var strategies = map[string]Classifier{
	StrategyCosine: Classify,
	StrategyRules:  DefaultRules.Classify,
}

// ParseStrategy returns the classifier registered under name.
func ParseStrategy(name string) (Classifier, error) {
	c, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownStrategy, name, StrategyNames())
	}
	return c, nil
}

// StrategyNames lists the registered strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
