package cmd

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/alcc/internal/tui/repl"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Long: `Starts an interactive read-eval-print loop.

Commands:
  :tokens <expr>  show the tokens
  :ast <expr>     show the syntax tree
  :clear          clear the output
  :help           show help

Navigation:
  Enter     - evaluate
  Up/Down   - recall previous inputs
  Ctrl+L    - clear
  Esc       - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return errors.New("the REPL needs an interactive terminal, use eval for piped input")
			}

			model := repl.NewModel(a.engine, repl.Config{
				Prompt:      a.cfg.GetString("repl.prompt"),
				HistorySize: a.cfg.GetInt("repl.history_size"),
				Color:       a.renderer.Color(),
			})

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
