package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finch-reader/finch/pkg/document"
	"github.com/finch-reader/finch/pkg/markdown"
)

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the markup token stream",
		Long: `Tokens streams the document through the markup tokenizer and prints
each emitted token, for debugging pagination differences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}

	return cmd
}

func runTokens(cmd *cobra.Command, path string) error {
	doc, err := document.Open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())

	tokenizer := markdown.NewTokenizer(func(tok markdown.Token) {
		fmt.Fprintf(out, "%-16s", tok.Kind)
		if tok.Level != 0 {
			fmt.Fprintf(out, " level=%d", tok.Level)
		}
		if tok.Text != "" {
			fmt.Fprintf(out, " %q", tok.Text)
		}
		fmt.Fprintln(out)
	})

	err = document.ForEachLine(doc, func(line string) error {
		tokenizer.FeedLine(line)
		return nil
	})
	if err != nil {
		return err
	}
	tokenizer.Finish()

	return out.Flush()
}
