package cantodice

import "errors"

// ErrCardinality indicates that a pipeline stage did not end up with the
// exact syllable count it is required to produce. This means an inventory
// edit broke the 6^5 design; branch with errors.Is.
var ErrCardinality = errors.New("cantodice: syllable count off target")

// ErrSurplus indicates that the surplus for the partial tone-4 reduction
// is negative or exceeds the available candidates. The original lists
// were generated with inventories where this cannot happen; treat it as a
// fatal configuration error.
var ErrSurplus = errors.New("cantodice: tone-4 surplus out of range")

// ErrDuplicateWord indicates that two distinct syllables rendered to the
// same surface text, which would make a Diceware list ambiguous.
var ErrDuplicateWord = errors.New("cantodice: duplicate surface form")
