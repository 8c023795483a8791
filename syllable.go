package cantodice

import "strings"

// NullInitial marks the absence of a consonantal onset. It is carried
// through filtering and conversion and stripped only when a surface form
// is rendered.
const NullInitial = "?"

// Initials is the fixed inventory of 24 onsets in Conway's Custom
// Romanisation.
//
// The pseudo-English initial "r" is included, and {ts vs ch},
// {ts' vs ch'} and {s vs sh} are left unmerged, to boost the number of
// syllables.
var Initials = strings.Fields(`
	?
	p p' m f
	t t' n l
	k k' ng h kw k'w w
	ts ts' ch ch' s sh y
	r
`)

// Finals is the fixed inventory of 60 finals. ASCII substitutes are used:
// oe for œ (U+0153) and ue for ü (U+00FC). The underscore prefix marks
// finals whose written form depends on the romanisation scheme; it stays
// part of the Conway surface form.
//
// The pseudo-English finals "en", "et", "oen" and "oet" are included to
// boost the number of syllables.
var Finals = strings.Fields(`
	aa aai aau aam aan aang aap aat aak
	ai au am an ang ap at ak
	e ei eu em en eng ep et ek
	ee eeu eem een ing eep eet ik
	or oi ou orn ong ort ok
	oo ooi oon ung oot uk
	oe oen oeng oet oek
	_ue _n _t
	ue uen uet
	m ng
`)

// Pitches are the vernacular pitch digits. Canonical tone digits 7-9 for
// entering tones never appear in the inventory; they are produced by
// Canonicalize.
var Pitches = []string{"1", "2", "3", "4", "5", "6"}

// Syllable is one (initial, final, pitch) combination. Fields hold the
// exact inventory values, markers included; conversion and filtering
// compare whole fields, so no separator or anchoring tricks are needed.
type Syllable struct {
	Initial string
	Final   string
	Pitch   string
}

// Entering reports whether the syllable carries an entering tone, i.e.
// its final ends in an unreleased stop consonant.
func (syl Syllable) Entering() bool {
	switch syl.Final[len(syl.Final)-1] {
	case 'p', 't', 'k':
		return true
	}
	return false
}

// nasalOnly reports whether the final is a pure syllabic nasal, which is
// pronounceable only without an onset.
func (syl Syllable) nasalOnly() bool {
	return syl.Final == "m" || syl.Final == "ng"
}

// Surface renders the syllable as plain text: the null-initial marker is
// dropped, everything else is concatenated as-is.
func (syl Syllable) Surface() string {
	initial := syl.Initial
	if initial == NullInitial {
		initial = ""
	}
	return initial + syl.Final + syl.Pitch
}

// Enumerate produces the full Cartesian product of the inventories in a
// fixed nested order: initial outer, final middle, pitch inner.
// 24 x 60 x 6 = 8640 syllables.
func Enumerate() []Syllable {
	all := make([]Syllable, 0, len(Initials)*len(Finals)*len(Pitches))
	for _, initial := range Initials {
		for _, final := range Finals {
			for _, pitch := range Pitches {
				all = append(all, Syllable{Initial: initial, Final: final, Pitch: pitch})
			}
		}
	}
	tracer().Debugf("enumerated %d candidate syllables", len(all))
	return all
}
