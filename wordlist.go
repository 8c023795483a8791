package cantodice

import (
	"bufio"
	"io"
)

// WriteList writes entries as "<roll> <word>" lines, newline-terminated,
// to w. Callers validate entry counts through AssignRolls before any
// byte is written here.
func WriteList(w io.Writer, entries []Entry) error {
	buffered := bufio.NewWriter(w)
	for _, entry := range entries {
		if _, err := buffered.WriteString(entry.Roll); err != nil {
			return err
		}
		if err := buffered.WriteByte(' '); err != nil {
			return err
		}
		if _, err := buffered.WriteString(entry.Word); err != nil {
			return err
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// Generate runs the scheme-independent part of the pipeline: enumerate,
// filter to exactly TargetCount, canonicalise entering tones. The result
// is the canonical syllable set every romanisation scheme renders from.
func Generate() ([]Syllable, error) {
	sylls, err := Filter(Enumerate())
	if err != nil {
		return nil, err
	}
	sylls = Canonicalize(sylls)
	tracer().Infof("canonical syllable set ready: %d syllables", len(sylls))
	return sylls, nil
}
