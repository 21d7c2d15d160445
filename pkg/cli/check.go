package cli

import "fmt"

type CheckCmd struct {
	LoadArgs
	Words []string `help:"Words to check against the loaded list" short:"w" required:""`
	Limit int      `help:"Cap the completions listed per word" default:"5"`
}

// Run executes the check command: load the word lists, then report what the
// dictionary knows about each requested word.
func (cmd *CheckCmd) Run(ctx *Context) error {
	stats := &Stats{}
	if err := load(ctx, &cmd.LoadArgs, stats); err != nil {
		return err
	}

	for _, word := range cmd.Words {
		result, err := ctx.Dict.Lookup(word, cmd.Limit)
		if err != nil {
			return err
		}
		fmt.Println(result.String())
	}

	fmt.Println(stats.String())
	return nil
}
