package main

import (
	"fmt"
	"strings"

	"github.com/jiaulislam/ponsdict"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	pair, err := parsePair(c.Source, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	results, err := deps.Dictionary.LookupMany(deps.Ctx, c.Words, pair, c.All)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	for _, r := range results {
		req := ponsdict.LookupRequest{Word: r.Word, Pair: pair}
		short := req.ShortCircuit()
		translations := make([]string, len(r.Translations))
		for i, t := range r.Translations {
			if !short {
				t = strings.TrimSpace(t)
			}
			translations[i] = t
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", r.Word, strings.Join(translations, "; "))
	}
	return nil
}
