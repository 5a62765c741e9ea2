package main

import (
	"fmt"

	"github.com/jiaulislam/ponsdict"
)

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	for _, l := range ponsdict.Languages() {
		fmt.Fprintf(deps.Stdout, "%-6s %s\n", l, l.Name())
	}
	return nil
}
