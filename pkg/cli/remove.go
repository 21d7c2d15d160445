package cli

import "fmt"

type RemoveCmd struct {
	LoadArgs
	Words  []string `help:"Words to remove from the loaded list" short:"w" required:""`
	Output string   `help:"Write the remaining words to this file (.txt, .csv or .json)" type:"path"`
}

// Run executes the remove command: load the word lists, remove the requested
// words, report each outcome and optionally write what is left.
func (cmd *RemoveCmd) Run(ctx *Context) error {
	stats := &Stats{}
	if err := load(ctx, &cmd.LoadArgs, stats); err != nil {
		return err
	}

	for _, word := range cmd.Words {
		removed, err := ctx.Dict.Remove(word)
		if err != nil {
			return err
		}
		if removed {
			fmt.Printf("removed %q\n", word)
			stats.Removed++
		} else {
			fmt.Printf("%q was not stored\n", word)
		}
	}

	if cmd.Output != "" {
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
