package main

import (
	"bufio"
	"encoding/json"
	"encoding/xml"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	sc "telspell/internal/corrector"
)

// buildmodel streams a MediaWiki XML dump, counts Telugu word frequencies
// over all page texts and writes the word->count model consumed by the
// correction service. Rare words are dropped: most of them are spelling
// errors themselves.
func main() {
	var (
		in      = flag.String("in", "tewiki-pages-articles.xml", "mediawiki xml dump to read")
		out     = flag.String("out", "Telugu_WordModel.json", "model file to write")
		minFreq = flag.Int64("min-freq", 100, "drop words with count at or below this")
	)
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open dump: %v", err)
	}
	defer f.Close()

	counts, pages, err := countWords(bufio.NewReaderSize(f, 1<<20))
	if err != nil {
		log.Fatalf("parse dump: %v", err)
	}
	log.Printf("processed %d pages, %d unique tokens", pages, len(counts))

	filtered := make(map[string]int64)
	for w, c := range counts {
		if c > *minFreq {
			filtered[w] = c
		}
	}
	log.Printf("kept %d words with count > %d", len(filtered), *minFreq)

	if err := writeModel(*out, filtered); err != nil {
		log.Fatalf("write model: %v", err)
	}
	log.Printf("model written to %s", *out)
}

// countWords walks the dump token by token so the whole file never lives in
// memory. Page text is buffered per <text> element and tokenized on close;
// character data arrives in chunks and must not be split mid-word.
func countWords(r io.Reader) (map[string]int64, int64, error) {
	counts := make(map[string]int64)
	dec := xml.NewDecoder(r)

	var (
		pages  int64
		inText bool
		text   strings.Builder
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pages, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "text" {
				inText = true
				text.Reset()
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "text":
				inText = false
				for _, w := range sc.Tokens(text.String()) {
					counts[w]++
				}
			case "page":
				pages++
				if pages%5000 == 0 {
					log.Printf("processed %d pages...", pages)
				}
			}
		}
	}
	return counts, pages, nil
}

func writeModel(path string, counts map[string]int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(counts); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
