package romanise

// Built-in conversion tables, authored as whitespace-separated
// pattern/replacement pairs. Tables list departures from Conway only.

// Conway is the canonical scheme; it converts nothing.
const Conway = "conway"

// NOTE: zh, ch and sh have been added to Jyutping for ch, ch' and sh.
const jyutpingInitials = `
	p b
	p' p
	t d
	t' t
	k g
	k' k
	kw gw
	k'w kw
	ts z
	ts' c
	ch zh
	ch' ch
	y j
`

const jyutpingFinals = `
	ee i
	eeu iu
	eem im
	een in
	eep ip
	eet it
	or o
	orn on
	ort ot
	oo u
	ooi ui
	oon un
	oot ut
	_ue eoi
	_n eon
	_t eot
	ue yu
	uen yun
	uet yut
`

// NOTE: jh, chh and sh have been added to Sidney Lau for ch, ch' and sh.
const sidneyLauInitials = `
	p b
	p' p
	t d
	t' t
	k g
	k' k
	kw gw
	k'w kw
	ch jh
	ch' chh
	ts j
	ts' ch
`

const sidneyLauFinals = `
	aa a
	ee i
	eeu iu
	eem im
	een in
	eep ip
	eet it
	or oh
	ou o
	orn on
	ort ot
	oe euh
	oen eun
	oeng eung
	oet eut
	oek euk
	_ue ui
	_n un
	_t ut
`

// All non-Conway romanisations write canonical entering tones 7, 8 and 9
// as vernacular 1, 3 and 6.
const alternateTones = `
	7 1
	8 3
	9 6
`

// Schemes returns the configured schemes in output order, Conway first.
// The tables are embedded constants, so a loading failure is an
// authoring defect and panics.
func Schemes() []*Scheme {
	conway, err := LoadScheme(Conway, nil, nil, nil)
	if err != nil {
		panic(err)
	}
	jyutping, err := LoadSchemeTables("jyutping", jyutpingInitials, jyutpingFinals, alternateTones)
	if err != nil {
		panic(err)
	}
	sidneyLau, err := LoadSchemeTables("sidney_lau", sidneyLauInitials, sidneyLauFinals, alternateTones)
	if err != nil {
		panic(err)
	}
	return []*Scheme{conway, jyutping, sidneyLau}
}
