package cantodice

// canonicalTones maps vernacular pitch digits of entering-tone syllables
// to their canonical tone digits. No source digit equals a target digit,
// so the pass is idempotent.
var canonicalTones = map[string]string{
	"1": "7",
	"3": "8",
	"6": "9",
}

// Canonicalize rewrites the pitch of every entering-tone syllable to its
// canonical tone digit (1->7, 3->8, 6->9) in a single pass. Non-entering
// syllables and the remaining vernacular entering pitches (2 and 4) pass
// through untouched. The input slice is not modified.
func Canonicalize(sylls []Syllable) []Syllable {
	out := make([]Syllable, len(sylls))
	for i, syl := range sylls {
		if syl.Entering() {
			if tone, ok := canonicalTones[syl.Pitch]; ok {
				syl.Pitch = tone
			}
		}
		out[i] = syl
	}
	return out
}
