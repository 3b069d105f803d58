package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gouthamgo/apex-academy/internal/curriculum"
	"github.com/gouthamgo/apex-academy/internal/tui"
)

var viewLogPath string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the curriculum in the terminal",
	Long: `The view command opens a full-screen terminal browser for the
curriculum. Select a topic with enter, copy the focused code sample
with 'c' (via the OSC 52 clipboard sequence), and return with esc.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Clipboard failures are diagnostic-only; they go to a log
		// file when asked for, nowhere otherwise. Writing them to
		// stderr would corrupt the alt-screen display.
		logger := log.New(io.Discard, "", log.LstdFlags)
		if viewLogPath != "" {
			f, err := os.OpenFile(viewLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file %s: %w", viewLogPath, err)
			}
			defer f.Close()
			logger = log.New(f, "", log.LstdFlags)
		}

		model := tui.New(curriculum.Topics(), nil, logger)
		program := tea.NewProgram(model, tea.WithAltScreen())
		_, err := program.Run()
		return err
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewLogPath, "log-output", "", "write diagnostic logs to this file")
	rootCmd.AddCommand(viewCmd)
}
