/*
Package cantodice generates Diceware word lists of pronounceable Cantonese
syllables (including gibberish and pseudo-English), one list per
romanisation scheme.

The pipeline enumerates every (initial, final, pitch) combination of
Conway's Custom Romanisation, prunes unpronounceable combinations down to
exactly 6^5 = 7776 syllables, canonicalises entering tones, and pairs the
sorted surface forms with five-digit base-6 dice rolls. Alternate
romanisation renderings live in the subpackage romanise.

Further Reading

	https://yawnoc.github.io/cantonese/conway-romanisation
	https://theworld.com/~reinhold/diceware.html

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package cantodice

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cantodice'
func tracer() tracing.Trace {
	return tracing.Select("cantodice")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
