/*
Package romanise re-renders canonical Conway syllables under alternate
romanisation conventions.

A scheme is three ordered rule groups (initials, finals, tones) of
pattern/replacement pairs. Rules match on whole fields of a
cantodice.Syllable, never on substrings, so a short pattern can never
clobber the inside of a longer field value. Tables only list departures
from Conway; unmatched fields pass through unchanged.
*/
package romanise

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cantodice.romanise'
func tracer() tracing.Trace {
	return tracing.Select("cantodice.romanise")
}
