package cantodice

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateProducesCanonicalSet(t *testing.T) {
	sylls, err := Generate()
	require.NoError(t, err)
	require.Len(t, sylls, TargetCount)
}

func TestConwayListScenario(t *testing.T) {
	sylls, err := Generate()
	require.NoError(t, err)

	words := make([]string, len(sylls))
	for i, syl := range sylls {
		words[i] = syl.Surface()
	}
	entries, err := AssignRolls(words)
	require.NoError(t, err)

	// the null-initial syllable (?, aa, 1) surfaces as "aa1" and sits at
	// its sorted position, paired with whatever roll lands there
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)
	at := sort.SearchStrings(sorted, "aa1")
	require.Less(t, at, len(sorted))
	require.Equal(t, "aa1", entries[at].Word)
	require.Equal(t, Rolls()[at], entries[at].Roll)

	// (k', ok, 1) survives filtering and is canonicalised to tone 7
	require.Contains(t, words, "k'ok7")
}

func TestWriteListFormat(t *testing.T) {
	words := make([]string, TargetCount)
	for i, roll := range Rolls() {
		words[i] = "w" + roll
	}
	entries, err := AssignRolls(words)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, entries))

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"), "final line must be newline-terminated")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, TargetCount)
	require.Equal(t, "11111 w11111", lines[0])
	require.Equal(t, "66666 w66666", lines[len(lines)-1])
}

func TestPipelineIsDeterministic(t *testing.T) {
	run := func() []byte {
		sylls, err := Generate()
		require.NoError(t, err)
		words := make([]string, len(sylls))
		for i, syl := range sylls {
			words[i] = syl.Surface()
		}
		entries, err := AssignRolls(words)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, WriteList(&buf, entries))
		return buf.Bytes()
	}
	require.Equal(t, run(), run())
}
