package romanise

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/npillmayer/cantodice"
)

func TestTokenReader(t *testing.T) {
	reader := NewTokenReader(strings.NewReader(" p b \n t' t\n"))

	pattern, replacement, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, "p", pattern)
	require.Equal(t, "b", replacement)

	pattern, replacement, err = reader.Next()
	require.NoError(t, err)
	require.Equal(t, "t'", pattern)
	require.Equal(t, "t", replacement)

	_, _, err = reader.Next()
	require.Equal(t, io.EOF, err)
}

func TestTokenReaderRejectsUnpairedToken(t *testing.T) {
	reader := NewTokenReader(strings.NewReader("p b\nt'"))
	_, _, err := reader.Next()
	require.NoError(t, err)
	_, _, err = reader.Next()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedTable))
}

func TestLoadSchemeFailsOnMalformedTable(t *testing.T) {
	_, err := LoadSchemeTables("broken", "p b t'", "", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedTable))
}

func TestLoadSchemeFailsOnDuplicatePattern(t *testing.T) {
	_, err := LoadSchemeTables("broken", "p b\np d", "", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAmbiguousTable))
}

func TestConwayIsIdentity(t *testing.T) {
	conway := Schemes()[0]
	require.Equal(t, Conway, conway.Name)
	for _, syl := range []cantodice.Syllable{
		{Initial: "?", Final: "aa", Pitch: "1"},
		{Initial: "k'", Final: "ok", Pitch: "7"},
		{Initial: "ch", Final: "_ue", Pitch: "8"},
	} {
		require.Equal(t, syl, conway.Convert(syl))
	}
}

func TestJyutpingConversion(t *testing.T) {
	jyutping := Schemes()[1]
	require.Equal(t, "jyutping", jyutping.Name)

	// every field with a table entry is rewritten exactly once;
	// fields without an entry pass through
	converted := jyutping.Convert(cantodice.Syllable{Initial: "k'", Final: "ok", Pitch: "7"})
	require.Equal(t, cantodice.Syllable{Initial: "k", Final: "ok", Pitch: "1"}, converted)
	require.Equal(t, "kok1", converted.Surface())

	converted = jyutping.Convert(cantodice.Syllable{Initial: "ts'", Final: "_ue", Pitch: "9"})
	require.Equal(t, cantodice.Syllable{Initial: "c", Final: "eoi", Pitch: "6"}, converted)

	// whole-field matching: "ts" must not fire inside "ts'", and the
	// short final "or" must not fire inside "orn"
	converted = jyutping.Convert(cantodice.Syllable{Initial: "ts", Final: "orn", Pitch: "2"})
	require.Equal(t, cantodice.Syllable{Initial: "z", Final: "on", Pitch: "2"}, converted)

	converted = jyutping.Convert(cantodice.Syllable{Initial: "s", Final: "aam", Pitch: "3"})
	require.Equal(t, cantodice.Syllable{Initial: "s", Final: "aam", Pitch: "3"}, converted)
}

func TestSidneyLauConversion(t *testing.T) {
	sidneyLau := Schemes()[2]
	require.Equal(t, "sidney_lau", sidneyLau.Name)

	require.Equal(t, "a1",
		sidneyLau.Convert(cantodice.Syllable{Initial: "?", Final: "aa", Pitch: "1"}).Surface())
	require.Equal(t, "jhek3",
		sidneyLau.Convert(cantodice.Syllable{Initial: "ch", Final: "ek", Pitch: "8"}).Surface())
	require.Equal(t, "cheung2",
		sidneyLau.Convert(cantodice.Syllable{Initial: "ts'", Final: "oeng", Pitch: "2"}).Surface())
}

func TestSchemesRegistryOrder(t *testing.T) {
	schemes := Schemes()
	require.Len(t, schemes, 3)
	require.Equal(t, []string{"conway", "jyutping", "sidney_lau"},
		[]string{schemes[0].Name, schemes[1].Name, schemes[2].Name})
}
