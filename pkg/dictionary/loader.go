/*
Package dictionary loads word lists into a trie.

A word list is plain text with one word per whitespace separated token.
Lines, tabs and repeated spaces are all separators, so both one-word-per-line
files and running prose work. Every token passes through a utils.WordFilter
before insertion; tokens the filter rejects are counted and skipped.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/charmbracelet/log"
)

// maxTokenSize bounds a single token so a file without whitespace cannot
// grow the scanner buffer without limit.
const maxTokenSize = 1 << 20

// Inserter is the part of trie.Trie the loader writes to.
type Inserter interface {
	Insert(word string) error
}

// Stats summarises one load.
type Stats struct {
	Tokens   int
	Inserted int
	Skipped  int
}

// Loader reads word lists.
type Loader struct {
	filter *utils.WordFilter
}

// NewLoader creates a loader that cleans every token with filter.
func NewLoader(filter *utils.WordFilter) *Loader {
	return &Loader{filter: filter}
}

// LoadFile inserts every valid word of the file at path.
func (l *Loader) LoadFile(dst Inserter, path string) (Stats, error) {
	if err := ValidateFile(path); err != nil {
		return Stats{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	stats, err := l.Load(dst, file)
	if err != nil {
		return stats, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	log.Debugf("Loaded %s: %d tokens, %d inserted, %d skipped", path, stats.Tokens, stats.Inserted, stats.Skipped)
	return stats, nil
}

// Load inserts every valid word read from r. Words inserted before a read
// error stay inserted.
func (l *Loader) Load(dst Inserter, r io.Reader) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		stats.Tokens++
		word, err := l.filter.Clean(scanner.Text())
		if err != nil {
			stats.Skipped++
			log.Debugf("Skipping token %d: %v", stats.Tokens, err)
			continue
		}
		if err := dst.Insert(word); err != nil {
			stats.Skipped++
			log.Warnf("Insert rejected %q: %v", word, err)
			continue
		}
		stats.Inserted++
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return stats, fmt.Errorf("token longer than %d bytes: %w", maxTokenSize, err)
		}
		return stats, err
	}
	return stats, nil
}
