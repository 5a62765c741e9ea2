package ponsdict_test

import (
	"strings"
	"testing"

	"github.com/jiaulislam/ponsdict"
	"github.com/stretchr/testify/assert"
)

func TestLookupRequest_Validate(t *testing.T) {
	t.Parallel()

	pair := ponsdict.LanguagePair{Source: "fr", Target: "en"}

	t.Run("accepts an empty word", func(t *testing.T) {
		t.Parallel()

		req := &ponsdict.LookupRequest{Word: "", Pair: pair}

		assert.NoError(t, req.Validate())
	})

	t.Run("accepts a word of exactly the limit", func(t *testing.T) {
		t.Parallel()

		req := &ponsdict.LookupRequest{Word: strings.Repeat("é", ponsdict.MaxWordLength), Pair: pair}

		assert.NoError(t, req.Validate())
	})

	t.Run("rejects a word over the limit", func(t *testing.T) {
		t.Parallel()

		req := &ponsdict.LookupRequest{Word: strings.Repeat("a", ponsdict.MaxWordLength+1), Pair: pair}

		assert.Equal(t, ponsdict.EINVALID, ponsdict.ErrorCode(req.Validate()))
	})

	t.Run("accepts a number", func(t *testing.T) {
		t.Parallel()

		req := &ponsdict.LookupRequest{Word: "1234", Pair: pair}

		assert.NoError(t, req.Validate())
	})
}

func TestLookupRequest_ShortCircuit(t *testing.T) {
	t.Parallel()

	assert.True(t, (&ponsdict.LookupRequest{Word: "  ", Pair: ponsdict.LanguagePair{Source: "fr", Target: "en"}}).ShortCircuit())
	assert.True(t, (&ponsdict.LookupRequest{Word: "chat", Pair: ponsdict.LanguagePair{Source: "fr", Target: "fr"}}).ShortCircuit())
	assert.False(t, (&ponsdict.LookupRequest{Word: "chat", Pair: ponsdict.LanguagePair{Source: "fr", Target: "en"}}).ShortCircuit())
}

func TestLookupResult_Text(t *testing.T) {
	t.Parallel()

	var nilResult *ponsdict.LookupResult

	assert.Equal(t, "hello ", (&ponsdict.LookupResult{Translations: []string{"hello ", "hi there "}}).Text())
	assert.Empty(t, (&ponsdict.LookupResult{}).Text())
	assert.Empty(t, nilResult.Text())
}
