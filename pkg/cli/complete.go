package cli

import "fmt"

type CompleteCmd struct {
	LoadArgs
	Prefix string `help:"Prefix to complete" short:"p" required:""`
	Limit  int    `help:"Cap the number of completions, 0 means all" default:"0"`
}

// Run executes the complete command: load the word lists, then print every
// stored word starting with the prefix.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	stats := &Stats{}
	if err := load(ctx, &cmd.LoadArgs, stats); err != nil {
		return err
	}

	completions, err := ctx.Dict.Complete(cmd.Prefix, cmd.Limit)
	if err != nil {
		return err
	}
	for _, word := range completions {
		fmt.Println(word)
	}

	fmt.Println(stats.String())
	return nil
}
