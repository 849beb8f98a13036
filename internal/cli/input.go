// Package cli runs the line oriented command loop: INSERT, LOAD, REMOVE,
// AUTOCORRECT, AUTOCOMPLETE, STATS and EXIT over one trie.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/cheynewallace/tabby"
)

// InputHandler reads whitespace separated tokens, turns them into commands
// and runs them against its trie. Results go to out, diagnostics to the log.
type InputHandler struct {
	trie     *trie.Trie
	matcher  suggest.ISuggester
	loader   *dictionary.Loader
	filter   *utils.WordFilter
	commands *commandTable
	out      io.Writer
	log      *log.Logger
	requests int
}

// NewInputHandler wires a handler around t. Words are cleaned with filter
// before they reach the trie.
func NewInputHandler(t *trie.Trie, filter *utils.WordFilter, out io.Writer) *InputHandler {
	return &InputHandler{
		trie:     t,
		matcher:  suggest.NewMatcher(t),
		loader:   dictionary.NewLoader(filter),
		filter:   filter,
		commands: newCommandTable(commandSpecs),
		out:      out,
		log:      logger.New("cli"),
	}
}

// Start runs commands from in until EXIT or end of input. Both tear the trie
// down. Bad commands are logged and skipped; only read errors are returned.
func (h *InputHandler) Start(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	for {
		token, ok := next()
		if !ok {
			break
		}
		spec, err := h.commands.resolve(token)
		if err != nil {
			h.log.Warn("Skipping token", "err", err)
			continue
		}

		args := make([]string, 0, spec.arity)
		for len(args) < spec.arity {
			arg, ok := next()
			if !ok {
				break
			}
			args = append(args, arg)
		}
		if len(args) < spec.arity {
			h.log.Warnf("%s expects %d argument(s), input ended", spec.name, spec.arity)
			break
		}

		cmd, err := spec.parse(args)
		if err != nil {
			h.log.Warnf("%s: %v", spec.name, err)
			continue
		}
		if h.Execute(cmd) {
			return nil
		}
	}

	h.teardown()
	return scanner.Err()
}

// Execute runs one command and reports whether the loop should stop.
func (h *InputHandler) Execute(cmd Command) bool {
	h.requests++
	switch c := cmd.(type) {
	case InsertCommand:
		h.insert(c.Word)
	case LoadCommand:
		h.load(c.Path)
	case RemoveCommand:
		h.remove(c.Word)
	case CorrectCommand:
		h.correct(c.Word, c.Budget)
	case CompleteCommand:
		h.complete(c.Prefix)
	case StatsCommand:
		h.stats()
	case ExitCommand:
		h.teardown()
		return true
	default:
		h.log.Errorf("Unhandled command %T", cmd)
	}
	return false
}

func (h *InputHandler) clean(op, raw string) (string, bool) {
	word, err := h.filter.Clean(raw)
	if err != nil {
		h.log.Warnf("%s: rejected input: %v", op, err)
		return "", false
	}
	return word, true
}

func (h *InputHandler) insert(raw string) {
	word, ok := h.clean("INSERT", raw)
	if !ok {
		return
	}
	if err := h.trie.Insert(word); err != nil {
		h.log.Warnf("INSERT %q: %v", word, err)
		return
	}
	h.log.Debug("Inserted", "word", word, "keys", h.trie.Len())
}

func (h *InputHandler) remove(raw string) {
	word, ok := h.clean("REMOVE", raw)
	if !ok {
		return
	}
	if err := h.trie.Remove(word); err != nil {
		h.log.Warnf("REMOVE %q: %v", word, err)
		return
	}
	h.log.Debug("Removed", "word", word, "keys", h.trie.Len(), "nodes", h.trie.Nodes())
}

func (h *InputHandler) load(path string) {
	stats, err := h.loader.LoadFile(h.trie, path)
	if err != nil {
		h.log.Errorf("LOAD: %v", err)
		fmt.Fprintf(h.out, "Error opening file: %s\n", path)
		return
	}
	h.log.Debug("Loaded", "path", path, "inserted", stats.Inserted, "skipped", stats.Skipped)
	fmt.Fprintf(h.out, "File %s successfully loaded.\n", path)
}

func (h *InputHandler) correct(raw string, budget int) {
	word, ok := h.clean("AUTOCORRECT", raw)
	if !ok {
		return
	}
	start := time.Now()
	found := 0
	for match := range h.matcher.Correct(word, budget) {
		fmt.Fprintln(h.out, match)
		found++
	}
	h.log.Debugf("Took [ %v ] for '%s' k=%d, %d match(es)", time.Since(start), word, budget, found)
}

func (h *InputHandler) complete(raw string) {
	prefix, ok := h.clean("AUTOCOMPLETE", raw)
	if !ok {
		return
	}
	start := time.Now()
	found := 0
	for word := range h.matcher.Complete(prefix) {
		fmt.Fprintln(h.out, word)
		found++
	}
	h.log.Debugf("Took [ %v ] for prefix '%s', %d completion(s)", time.Since(start), prefix, found)
}

func (h *InputHandler) stats() {
	table := tabby.NewCustom(tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0))
	table.AddHeader("KEYS", "NODES", "ALPHABET", "COMMANDS")
	table.AddLine(h.trie.Len(), h.trie.Nodes(), h.trie.Alphabet().String(), h.requests)
	table.Print()
}

func (h *InputHandler) teardown() {
	freed := h.trie.Clear()
	h.log.Debugf("Released %d node(s)", freed)
}

