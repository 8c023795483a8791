package cantodice

import "fmt"

// TargetCount is the number of syllables a five-digit base-6 dice code
// can index, 6^5. Every filtered list must hit it exactly.
const TargetCount = 7776

// Filter prunes the enumerated syllables down to exactly TargetCount.
// Three rules run in sequence:
//
//  1. drop syllables with a non-null initial and a pure nasal final
//     (a consonantal onset cannot precede a standalone nasal);
//  2. drop entering-tone syllables vernacularised as pitch 5;
//  3. drop just enough entering-tone pitch-4 syllables, in enumeration
//     order, to reach TargetCount.
//
// The surplus in step 3 is computed from the actual counts, never
// hard-coded. Filter returns ErrCardinality or ErrSurplus if the
// inventories no longer support the exact count.
func Filter(all []Syllable) ([]Syllable, error) {
	sylls := dropNasalOnset(all)
	tracer().Infof("nasal-final rule: %d -> %d syllables", len(all), len(sylls))

	before := len(sylls)
	sylls = dropEnteringPitch(sylls, "5", len(sylls)) // full category
	tracer().Infof("tone-5 entering rule: %d -> %d syllables", before, len(sylls))

	surplus := len(sylls) - TargetCount
	if surplus < 0 {
		return nil, fmt.Errorf("%w: %d candidates short of %d", ErrSurplus, -surplus, TargetCount)
	}
	if surplus > countEnteringPitch(sylls, "4") {
		return nil, fmt.Errorf("%w: surplus %d exceeds %d tone-4 entering candidates",
			ErrSurplus, surplus, countEnteringPitch(sylls, "4"))
	}
	before = len(sylls)
	sylls = dropEnteringPitch(sylls, "4", surplus)
	tracer().Infof("tone-4 entering rule: %d -> %d syllables (surplus %d)", before, len(sylls), surplus)

	if len(sylls) != TargetCount {
		return nil, fmt.Errorf("%w: have %d, want %d after filtering", ErrCardinality, len(sylls), TargetCount)
	}
	return sylls, nil
}

// dropNasalOnset removes every syllable combining a consonantal onset
// with a pure nasal final. Null-initial nasals stay.
func dropNasalOnset(sylls []Syllable) []Syllable {
	kept := make([]Syllable, 0, len(sylls))
	for _, syl := range sylls {
		if syl.Initial != NullInitial && syl.nasalOnly() {
			continue
		}
		kept = append(kept, syl)
	}
	return kept
}

// dropEnteringPitch removes up to limit entering-tone syllables carrying
// the given vernacular pitch, first-occurring-first-removed.
func dropEnteringPitch(sylls []Syllable, pitch string, limit int) []Syllable {
	kept := make([]Syllable, 0, len(sylls))
	for _, syl := range sylls {
		if limit > 0 && syl.Pitch == pitch && syl.Entering() {
			limit--
			continue
		}
		kept = append(kept, syl)
	}
	return kept
}

func countEnteringPitch(sylls []Syllable, pitch string) int {
	n := 0
	for _, syl := range sylls {
		if syl.Pitch == pitch && syl.Entering() {
			n++
		}
	}
	return n
}
