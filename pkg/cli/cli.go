package cli

import (
	"fmt"

	"github.com/khalid-nowaf/wordtrie/pkg/dictionary"
)

// Context carries the dictionary every command runs against.
type Context struct {
	Dict *dictionary.Dictionary
}

// CLI is the command tree kong parses.
var CLI struct {
	FailFast bool `help:"Abort loading on the first invalid word instead of skipping it."`

	Check    CheckCmd    `cmd:"" help:"Report whether words are stored, prefixes of stored words, or unknown."`
	Complete CompleteCmd `cmd:"" help:"List the stored words starting with a prefix."`
	Words    WordsCmd    `cmd:"" help:"Dump the stored word list."`
	Remove   RemoveCmd   `cmd:"" help:"Remove words and report the outcome."`
}

// NewContext builds the run context for the parsed command line.
func NewContext() *Context {
	opts := []dictionary.Option{}
	if CLI.FailFast {
		opts = append(opts, dictionary.WithFailFast())
	}
	return &Context{Dict: dictionary.New(opts...)}
}

// LoadArgs is the word list loading surface shared by every command.
type LoadArgs struct {
	Files   []string `arg:"" type:"existingfile" help:"Word list files (.txt, .csv or .json)"`
	WordKey string   `help:"Field or column holding the word in CSV and JSON files" default:"word"`
}

// load feeds every word in the command's files into the dictionary and folds
// the outcome into stats.
func load(ctx *Context, args *LoadArgs, stats *Stats) error {
	for _, file := range args.Files {
		var words []string
		if err := parseFile(file, args.WordKey, func(word string) error {
			words = append(words, word)
			return nil
		}); err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}

		result, err := ctx.Dict.AddAll(words...)
		if result != nil {
			stats.Loaded += result.Added + result.Duplicates + len(result.Invalid)
			stats.Added += result.Added
			stats.Duplicates += result.Duplicates
			stats.Invalid += len(result.Invalid)
		}
		if err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return nil
}
