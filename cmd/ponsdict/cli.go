package main

import (
	"context"
	"io"
	"time"

	"github.com/jiaulislam/ponsdict"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Dictionary ponsdict.Dictionary
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Proxy   string        `env:"PONSDICT_PROXY" help:"Proxy URL for requests (default: HTTP_PROXY/HTTPS_PROXY)"`
	Timeout time.Duration `env:"PONSDICT_TIMEOUT" default:"10s" help:"Request timeout"`
	Verbose bool          `short:"v" env:"PONSDICT_VERBOSE" help:"Log requests to stderr"`

	Lookup    LookupCmd    `cmd:"" help:"Translate a word"`
	Batch     BatchCmd     `cmd:"" help:"Translate several words, stopping at the first failure"`
	Languages LanguagesCmd `cmd:"" help:"List supported languages"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Word   string `arg:"" help:"Word to translate"`
	Source string `short:"s" required:"" help:"Source language code or name"`
	Target string `short:"t" default:"en" help:"Target language code or name"`
	All    bool   `short:"a" help:"Print every translation instead of the first"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Words  []string `arg:"" help:"Words to translate"`
	Source string   `short:"s" required:"" help:"Source language code or name"`
	Target string   `short:"t" default:"en" help:"Target language code or name"`
	All    bool     `short:"a" help:"Print every translation instead of the first"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct{}

// parsePair resolves source and target flags into a language pair.
func parsePair(source, target string) (ponsdict.LanguagePair, error) {
	src, err := ponsdict.ParseLanguage(source)
	if err != nil {
		return ponsdict.LanguagePair{}, err
	}
	tgt, err := ponsdict.ParseLanguage(target)
	if err != nil {
		return ponsdict.LanguagePair{}, err
	}
	return ponsdict.LanguagePair{Source: src, Target: tgt}, nil
}

// errorMessage returns the message of application errors and the full
// text of anything else, such as transport failures.
func errorMessage(err error) string {
	if ponsdict.ErrorCode(err) == ponsdict.EINTERNAL {
		return err.Error()
	}
	return ponsdict.ErrorMessage(err)
}
