package cantodice

import (
	"fmt"
	"sort"
)

// RollLength is the number of dice per code; 6^RollLength == TargetCount.
const RollLength = 5

const rollDigits = "123456"

// Entry pairs one dice roll with one rendered syllable.
type Entry struct {
	Roll string
	Word string
}

// Rolls enumerates all 7776 five-digit base-6 dice codes in odometer
// order with the rightmost digit varying fastest: "11111", "11112", ...,
// "11116", "11121", ..., "66666". This matches the order the reference
// lists were generated in.
func Rolls() []string {
	rolls := make([]string, 0, TargetCount)
	var digits [RollLength]byte
	for i := range digits {
		digits[i] = rollDigits[0]
	}
	for {
		rolls = append(rolls, string(digits[:]))
		pos := RollLength - 1
		for pos >= 0 && digits[pos] == rollDigits[len(rollDigits)-1] {
			digits[pos] = rollDigits[0]
			pos--
		}
		if pos < 0 {
			break
		}
		digits[pos]++
	}
	assert(len(rolls) == TargetCount, "dice roll enumeration must cover 6^5 codes")
	return rolls
}

// AssignRolls sorts the words in byte order and pairs them positionally
// with the dice rolls. The input slice is left untouched.
//
// It fails with ErrCardinality unless exactly TargetCount words are
// given, and with ErrDuplicateWord if two words collide after rendering;
// a short, padded or ambiguous list must never be emitted.
func AssignRolls(words []string) ([]Entry, error) {
	if len(words) != TargetCount {
		return nil, fmt.Errorf("%w: have %d words, want %d", ErrCardinality, len(words), TargetCount)
	}
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	rolls := Rolls()
	entries := make([]Entry, len(sorted))
	for i, word := range sorted {
		if i > 0 && word == sorted[i-1] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, word)
		}
		entries[i] = Entry{Roll: rolls[i], Word: word}
	}
	return entries, nil
}
