package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/cantodice"
	"github.com/npillmayer/cantodice/romanise"
)

func main() {
	dir := flag.String("dir", ".", "output directory")
	prefix := flag.String("prefix", "cantonese-diceware", "output filename prefix")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cantodice [options]")
		fmt.Fprintln(os.Stderr, "  Generates Cantonese Diceware word lists, one file per")
		fmt.Fprintln(os.Stderr, "  romanisation scheme: <prefix>-<scheme>.txt")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	sylls, err := cantodice.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate canonical syllables: %v\n", err)
		os.Exit(1)
	}

	for _, scheme := range romanise.Schemes() {
		entries, err := cantodice.AssignRolls(scheme.Render(sylls))
		if err != nil {
			fmt.Fprintf(os.Stderr, "scheme %s: %v\n", scheme.Name, err)
			os.Exit(1)
		}
		path := filepath.Join(*dir, fmt.Sprintf("%s-%s.txt", *prefix, scheme.Name))
		if err := writeList(path, entries); err != nil {
			fmt.Fprintf(os.Stderr, "scheme %s: %v\n", scheme.Name, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s: %d words\n", path, len(entries))
	}
}

// writeList creates path only after the entries have been fully
// validated; on a write error the partial file is removed.
func writeList(path string, entries []cantodice.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cantodice.WriteList(f, entries); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
