package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse sentences",
	Long: `repl reads sentences from the terminal and prints their parse
trees. Quit with <ctrl>D.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := makeParser()
		if err != nil {
			return err
		}
		rl, err := readline.New("charta> ")
		if err != nil {
			return err
		}
		defer rl.Close()
		pterm.Info.Printf("grammar %q loaded, quit with <ctrl>D\n", grammarName)
		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF || err != nil {
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if err := parseAndPrint(p, line); err != nil {
				pterm.Error.Println(err.Error())
			}
		}
	},
}
