/*
Package main implements the wordtrie spelling server and its CLI.

wordtrie keeps a dictionary in an alphabet-indexed trie and answers two
questions about it: which stored words are within k substituted letters of a
query (autocorrect), and which stored words start with a prefix
(autocomplete). It can operate as a MessagePack IPC server for integration
with editors, or as a line oriented CLI for scripting and debugging.

# Usage

Start the server with default settings:

	wordtrie

Preload word lists and enable debug mode:

	wordtrie -load words.txt -load names.txt -d

Run in CLI mode and feed it a script:

	wordtrie -c < script.txt

# Configuration

Runtime configuration is a TOML file. It is created with defaults under
$XDG_CONFIG_HOME/wordtrie (or ~/.config/wordtrie) when missing, and -config
points at another one:

	[trie]
	alphabet = "abcdefghijklmnopqrstuvwxyz"

	[cli]
	max_word_len = 256
	normalize = true
	default_budget = 1

	[dict]
	preload = []

	[server]
	max_budget = 8
	max_results = 0

A file that fails to decode is salvaged key by key; anything unusable falls
back to its default. Flags override the file.

# CLI Mode

The CLI reads whitespace separated tokens from stdin:

	INSERT word
	LOAD path
	REMOVE word
	AUTOCORRECT word k
	AUTOCOMPLETE prefix
	STATS
	EXIT

Command names are case-insensitive and may be abbreviated as long as the
abbreviation is unique (AUTOCOR works, AUTOCO does not). Results are printed
one word per line on stdout. Diagnostics go to stderr.

# Server Mode

The default mode reads msgpack requests from stdin and writes one msgpack
response per request to stdout. See package server for the message shapes.

	{"id": "r1", "op": "correct", "w": "cot", "k": 1}
	{"id": "r1", "s": [{"w": "cat", "d": 1, "n": 1}], "c": 1, "t": 12}

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-config string
	    Path to a TOML config file
	-load path
	    Word list to insert before the first command (repeatable)
	-k int
	    Default budget for requests that omit one
	-max-len int
	    Longest accepted word in bytes (0 for no limit)
	-no-normalize
	    Take input bytes as they are, without accent folding or lowercasing
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordtrie/internal/cli"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/server"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	gh      = "https://github.com/bastiangx/wordtrie"
)

// listFlag collects every value of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string { return fmt.Sprint(*l) }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main resolves config and flags, builds the trie and hands it to the CLI
// or the server. It does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	var preload listFlag
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for scripting and debugging")
	configPath := flag.String("config", "", "Path to a custom config file")
	flag.Var(&preload, "load", "Word list to load before the first command (repeatable)")
	budget := flag.Int("k", defaultConfig.CLI.DefaultBudget, "Default budget for requests that omit one")
	maxLen := flag.Int("max-len", defaultConfig.CLI.MaxWordLen, "Longest accepted word in bytes (0 for no limit)")
	noNormalize := flag.Bool("no-normalize", !defaultConfig.CLI.Normalize, "Disable accent folding and lowercasing of input")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if usedPath != "" {
		log.Debugf("Using config file: (%s)", usedPath)
	}

	// flags set on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "k":
			appConfig.CLI.DefaultBudget = *budget
		case "max-len":
			appConfig.CLI.MaxWordLen = *maxLen
		case "no-normalize":
			appConfig.CLI.Normalize = !*noNormalize
		}
	})

	alphabet := appConfig.Alphabet()
	t := trie.NewWithAlphabet(alphabet)
	filter := utils.NewWordFilter(alphabet, appConfig.CLI.MaxWordLen, appConfig.CLI.Normalize)

	loader := dictionary.NewLoader(filter)
	for _, path := range append(appConfig.Dict.Preload, preload...) {
		stats, err := loader.LoadFile(t, path)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		log.Debug("Preloaded", "path", path, "inserted", stats.Inserted, "skipped", stats.Skipped)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"alphabet", alphabet,
			"maxWordLen", appConfig.CLI.MaxWordLen,
			"normalize", appConfig.CLI.Normalize)

		inputHandler := cli.NewInputHandler(t, filter, os.Stdout)
		if err := inputHandler.Start(os.Stdin); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(t, filter, server.OptionsFromConfig(appConfig), os.Stdin, os.Stdout)
	showStartupInfo(t)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordtrie ] autocorrect and autocomplete over a trie")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo logs basic info about the init process on stderr.
func showStartupInfo(t *trie.Trie) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Info("init: OK", "keys", t.Len(), "nodes", t.Nodes())
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
