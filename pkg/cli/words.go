package cli

import "fmt"

type WordsCmd struct {
	LoadArgs
	Output string `help:"Write the words to this file instead of stdout (.txt, .csv or .json)" type:"path"`
}

// Run executes the words command: load the word lists, then dump the stored
// words to stdout or to the output file.
func (cmd *WordsCmd) Run(ctx *Context) error {
	stats := &Stats{}
	if err := load(ctx, &cmd.LoadArgs, stats); err != nil {
		return err
	}

	if cmd.Output == "" {
		for _, word := range ctx.Dict.Words() {
			fmt.Println(word)
		}
	} else {
		writer, err := writerFor(cmd.Output, stats)
		if err != nil {
			return err
		}
		if err := writer.Write(ctx.Dict, cmd.Output, cmd.WordKey); err != nil {
			return fmt.Errorf("writing %s: %w", cmd.Output, err)
		}
	}

	fmt.Println(stats.String())
	return nil
}
