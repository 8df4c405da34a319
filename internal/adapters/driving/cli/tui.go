package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search interface",
	Long: `Launch the interactive terminal interface for searching the meeting
archive.

Controls:
  /      - Open the search box
  ↓/↑    - Move between the query and results
  Enter  - Open the highlighted meeting
  Esc    - Close the search box
  q      - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps a stack trace visible after the alternate
	// screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if cfg == nil || cfg.Search == nil {
		return errors.New("search engine not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(cfg.Search))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context()).WithDebounce(cfg.Debounce)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Print the chosen meeting so it can be opened from the shell.
	if url := app.ChosenURL(); url != "" {
		cmd.Println(url)
	}
	return nil
}
