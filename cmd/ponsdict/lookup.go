package main

import (
	"fmt"
	"strings"

	"github.com/jiaulislam/ponsdict"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	pair, err := parsePair(c.Source, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	req := ponsdict.LookupRequest{
		Word: c.Word,
		Pair: pair,
		All:  c.All,
	}
	result, err := deps.Dictionary.Lookup(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	// Short-circuited results echo the word, which is printed as given.
	if req.ShortCircuit() {
		fmt.Fprintln(deps.Stdout, result.Text())
		return nil
	}
	for _, t := range result.Translations {
		fmt.Fprintln(deps.Stdout, strings.TrimSpace(t))
	}
	return nil
}
