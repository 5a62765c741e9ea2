package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jiaulislam/ponsdict"
	main "github.com/jiaulislam/ponsdict/cmd/ponsdict"
	"github.com/jiaulislam/ponsdict/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the first translation", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			LookupFn: func(_ context.Context, req ponsdict.LookupRequest) (*ponsdict.LookupResult, error) {
				if req.Word == "Haus" && req.Pair.Source == "de" && req.Pair.Target == "en" && !req.All {
					return &ponsdict.LookupResult{Word: req.Word, Translations: []string{"house "}}, nil
				}
				return &ponsdict.LookupResult{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Dictionary: dict,
		}

		cmd := &main.LookupCmd{Word: "Haus", Source: "de", Target: "en"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "house\n", stdout.String())
	})

	t.Run("prints a whitespace-only word as given", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			LookupFn: func(_ context.Context, req ponsdict.LookupRequest) (*ponsdict.LookupResult, error) {
				return &ponsdict.LookupResult{Word: req.Word, Translations: []string{req.Word}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Dictionary: dict,
		}

		cmd := &main.LookupCmd{Word: "   ", Source: "de", Target: "en"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "   \n", stdout.String())
	})

	t.Run("prints the word untouched when languages match", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			LookupFn: func(_ context.Context, req ponsdict.LookupRequest) (*ponsdict.LookupResult, error) {
				return &ponsdict.LookupResult{Word: req.Word, Translations: []string{req.Word}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Dictionary: dict,
		}

		cmd := &main.LookupCmd{Word: " chat ", Source: "fr", Target: "fr"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, " chat \n", stdout.String())
	})

	t.Run("reports lookup errors on stderr", func(t *testing.T) {
		t.Parallel()

		dict := &mock.Dictionary{
			LookupFn: func(_ context.Context, req ponsdict.LookupRequest) (*ponsdict.LookupResult, error) {
				return nil, ponsdict.Errorf(ponsdict.ENOTFOUND, "no translation found for %q", req.Word)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Dictionary: dict,
		}

		cmd := &main.LookupCmd{Word: "Haus", Source: "de", Target: "en"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ponsdict.ENOTFOUND, ponsdict.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: no translation found for \"Haus\"")
	})

	t.Run("rejects unknown languages before looking up", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Dictionary: &mock.Dictionary{
				LookupFn: func(_ context.Context, _ ponsdict.LookupRequest) (*ponsdict.LookupResult, error) {
					t.Error("unexpected lookup")
					return nil, nil
				},
			},
		}

		cmd := &main.LookupCmd{Word: "Haus", Source: "klingon", Target: "en"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ponsdict.EINVALID, ponsdict.ErrorCode(err))
		assert.Contains(t, stderr.String(), "klingon")
	})
}
