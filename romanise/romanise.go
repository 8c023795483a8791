package romanise

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/derekparker/trie"

	"github.com/npillmayer/cantodice"
)

// Rule is one whole-field conversion: a Conway field value and its
// rendering in the target scheme.
type Rule struct {
	Pattern     string
	Replacement string
}

// RuleReader yields conversion rules one-by-one.
// It should return io.EOF when the stream is exhausted.
type RuleReader interface {
	Next() (pattern, replacement string, err error)
}

// TokenReader streams rules from whitespace-separated pattern/replacement
// token pairs, the format the scheme tables are authored in.
type TokenReader struct {
	scanner *bufio.Scanner
}

func NewTokenReader(reader io.Reader) *TokenReader {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	return &TokenReader{scanner: scanner}
}

// Next returns the next rule as (pattern, replacement).
// It returns io.EOF when exhausted and ErrMalformedTable when the stream
// ends on a pattern without its replacement.
func (r *TokenReader) Next() (string, string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", "", err
		}
		return "", "", io.EOF
	}
	pattern := r.scanner.Text()
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", "", err
		}
		return "", "", fmt.Errorf("%w: pattern %q has no replacement", ErrMalformedTable, pattern)
	}
	return pattern, r.scanner.Text(), nil
}

// ruleGroup holds the rules for one syllable part. Lookup is an exact
// whole-field map, so rule order cannot introduce prefix ambiguity; the
// ordered slice is kept for auditing and reporting.
type ruleGroup struct {
	rules []Rule
	repl  map[string]string
}

func loadGroup(scheme, part string, reader RuleReader) (*ruleGroup, error) {
	group := &ruleGroup{repl: make(map[string]string)}
	for {
		pattern, replacement, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", scheme, part, err)
		}
		if _, seen := group.repl[pattern]; seen {
			return nil, fmt.Errorf("%s/%s: %w: %q", scheme, part, ErrAmbiguousTable, pattern)
		}
		group.rules = append(group.rules, Rule{Pattern: pattern, Replacement: replacement})
		group.repl[pattern] = replacement
	}
	group.auditPrefixes(scheme, part)
	return group, nil
}

// auditPrefixes reports rule patterns that are strict prefixes of other
// patterns in the same group, e.g. "ts" under "ts'". These were ordering
// traps for substring matchers; whole-field matching keeps them distinct,
// so they are traced, not rejected.
func (group *ruleGroup) auditPrefixes(scheme, part string) {
	patterns := trie.New()
	for _, rule := range group.rules {
		patterns.Add(rule.Pattern, nil)
	}
	for _, rule := range group.rules {
		for _, key := range patterns.PrefixSearch(rule.Pattern) {
			if key != rule.Pattern {
				tracer().Debugf("%s/%s: pattern %q is a prefix of %q (safe under whole-field matching)",
					scheme, part, rule.Pattern, key)
			}
		}
	}
}

// apply converts one field: first (and only) exact match wins, unmatched
// fields pass through unchanged.
func (group *ruleGroup) apply(field string) string {
	if replacement, ok := group.repl[field]; ok {
		return replacement
	}
	return field
}

// Scheme is one romanisation convention with its conversion tables.
// The zero tables make a scheme the identity conversion.
type Scheme struct {
	Name     string
	initials *ruleGroup
	finals   *ruleGroup
	tones    *ruleGroup
}

// LoadScheme builds a scheme from three rule streams, applied to the
// initial, final and pitch fields respectively. Any nil reader leaves
// that part unconverted. Loading fails fast on malformed or ambiguous
// tables.
func LoadScheme(name string, initials, finals, tones RuleReader) (*Scheme, error) {
	scheme := &Scheme{Name: name}
	var err error
	if scheme.initials, err = loadGroupOrEmpty(name, "initials", initials); err != nil {
		return nil, err
	}
	if scheme.finals, err = loadGroupOrEmpty(name, "finals", finals); err != nil {
		return nil, err
	}
	if scheme.tones, err = loadGroupOrEmpty(name, "tones", tones); err != nil {
		return nil, err
	}
	tracer().Infof("scheme %s loaded: %d initial, %d final, %d tone rules",
		name, len(scheme.initials.rules), len(scheme.finals.rules), len(scheme.tones.rules))
	return scheme, nil
}

// LoadSchemeTables is a convenience wrapper over LoadScheme for tables
// authored as whitespace-separated token-pair strings.
func LoadSchemeTables(name, initials, finals, tones string) (*Scheme, error) {
	return LoadScheme(name,
		NewTokenReader(strings.NewReader(initials)),
		NewTokenReader(strings.NewReader(finals)),
		NewTokenReader(strings.NewReader(tones)))
}

func loadGroupOrEmpty(scheme, part string, reader RuleReader) (*ruleGroup, error) {
	if reader == nil {
		return &ruleGroup{repl: make(map[string]string)}, nil
	}
	return loadGroup(scheme, part, reader)
}

// Convert re-renders a canonical syllable under this scheme. Rule groups
// apply in the fixed order initials, finals, tones; each touches only its
// own field, and the null-initial marker passes through untouched.
func (s *Scheme) Convert(syl cantodice.Syllable) cantodice.Syllable {
	syl.Initial = s.initials.apply(syl.Initial)
	syl.Final = s.finals.apply(syl.Final)
	syl.Pitch = s.tones.apply(syl.Pitch)
	return syl
}

// Render converts the canonical syllable set to this scheme's surface
// forms, marker-stripped, in input order.
func (s *Scheme) Render(sylls []cantodice.Syllable) []string {
	words := make([]string, len(sylls))
	for i, syl := range sylls {
		words[i] = s.Convert(syl).Surface()
	}
	return words
}
