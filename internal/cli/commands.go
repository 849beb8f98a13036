package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

var (
	// ErrUnknownCommand is returned for a token that names no command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrAmbiguousCommand is returned for an abbreviation shared by several commands.
	ErrAmbiguousCommand = errors.New("ambiguous command")
)

// Command is one parsed instruction. The set of implementations is closed.
type Command interface {
	command()
}

// InsertCommand stores Word.
type InsertCommand struct{ Word string }

// LoadCommand inserts every word of the word list at Path.
type LoadCommand struct{ Path string }

// RemoveCommand deletes Word.
type RemoveCommand struct{ Word string }

// CorrectCommand prints stored words within Budget substitutions of Word.
type CorrectCommand struct {
	Word   string
	Budget int
}

// CompleteCommand prints stored words starting with Prefix.
type CompleteCommand struct{ Prefix string }

// StatsCommand prints trie statistics.
type StatsCommand struct{}

// ExitCommand tears the trie down and ends the loop.
type ExitCommand struct{}

func (InsertCommand) command()   {}
func (LoadCommand) command()     {}
func (RemoveCommand) command()   {}
func (CorrectCommand) command()  {}
func (CompleteCommand) command() {}
func (StatsCommand) command()    {}
func (ExitCommand) command()     {}

// commandSpec describes how many argument tokens a command takes and how
// to turn them into a Command.
type commandSpec struct {
	name  string
	arity int
	parse func(args []string) (Command, error)
}

var commandSpecs = []commandSpec{
	{"INSERT", 1, func(args []string) (Command, error) {
		return InsertCommand{Word: args[0]}, nil
	}},
	{"LOAD", 1, func(args []string) (Command, error) {
		return LoadCommand{Path: args[0]}, nil
	}},
	{"REMOVE", 1, func(args []string) (Command, error) {
		return RemoveCommand{Word: args[0]}, nil
	}},
	{"AUTOCORRECT", 2, func(args []string) (Command, error) {
		budget, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid budget %q: %w", args[1], err)
		}
		return CorrectCommand{Word: args[0], Budget: budget}, nil
	}},
	{"AUTOCOMPLETE", 1, func(args []string) (Command, error) {
		return CompleteCommand{Prefix: args[0]}, nil
	}},
	{"STATS", 0, func([]string) (Command, error) {
		return StatsCommand{}, nil
	}},
	{"EXIT", 0, func([]string) (Command, error) {
		return ExitCommand{}, nil
	}},
}

// commandTable resolves command names. Names are matched case-insensitively
// and any unambiguous abbreviation selects its command.
type commandTable struct {
	names *patricia.Trie
}

func newCommandTable(specs []commandSpec) *commandTable {
	names := patricia.NewTrie()
	for i := range specs {
		names.Insert(patricia.Prefix(specs[i].name), &specs[i])
	}
	return &commandTable{names: names}
}

func (ct *commandTable) resolve(token string) (*commandSpec, error) {
	key := patricia.Prefix(strings.ToUpper(token))
	if item := ct.names.Get(key); item != nil {
		return item.(*commandSpec), nil
	}

	var found []*commandSpec
	err := ct.names.VisitSubtree(key, func(_ patricia.Prefix, item patricia.Item) error {
		found = append(found, item.(*commandSpec))
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%q: %w", token, ErrUnknownCommand)
	case 1:
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, spec := range found {
			names[i] = spec.name
		}
		return nil, fmt.Errorf("%q matches %s: %w", token, strings.Join(names, ", "), ErrAmbiguousCommand)
	}
}
