package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jiaulislam/ponsdict"
	ponshttp "github.com/jiaulislam/ponsdict/http"
	"github.com/jiaulislam/ponsdict/pons"
	ponsslog "github.com/jiaulislam/ponsdict/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Dictionary overrides the PONS service. Set before calling Run() in tests.
	Dictionary ponsdict.Dictionary
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ponsdict"),
		kong.Description("Look up word translations in the PONS online dictionary"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ponsdict --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Dictionary = m.Dictionary
	if deps.Dictionary == nil {
		dict, err := newDictionary(cli, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
			return err
		}
		deps.Dictionary = dict
	}

	return kongCtx.Run(deps)
}

// newDictionary wires the HTTP fetcher and the PONS service from global flags.
func newDictionary(cli *CLI, stderr io.Writer) (ponsdict.Dictionary, error) {
	proxy, err := ponshttp.ParseProxy(cli.Proxy)
	if err != nil {
		return nil, err
	}

	opts := []ponshttp.Option{ponshttp.WithTimeout(cli.Timeout)}
	if proxy != nil {
		opts = append(opts, ponshttp.WithProxyURL(proxy))
	}

	var fetcher ponsdict.Fetcher = ponshttp.NewFetcher(opts...)
	if !cli.Verbose {
		return pons.NewService(fetcher), nil
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	fetcher = ponsslog.NewLoggingFetcher(fetcher, logger)
	return ponsslog.NewLoggingDictionary(pons.NewService(fetcher), logger), nil
}
