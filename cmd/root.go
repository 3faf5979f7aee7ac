// Package cmd wires the folio command line.
package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/page"
	"github.com/llehouerou/folio/internal/state"
)

var (
	cfgFile     string
	contentFile string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A terminal portfolio",
	Long: `folio renders a portfolio in the terminal as one scrolling page:
a rotating hero, an experience timeline that follows the scroll, card rows
that track the card nearest their center, and a contact footer.

Use "folio serve" to render the same content over HTTP.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: XDG config dir, then ./config.toml)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "portfolio TOML file (default: built-in content)")
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPortfolio()
	if err != nil {
		return err
	}

	if cfg.Debug {
		f, err := tea.LogToFile("folio.log", "debug")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// The page keeps working without persistence.
	var store state.Interface
	stateMgr, stateErr := state.Open()
	if stateErr != nil {
		log.Printf("state: %v", stateErr)
	} else {
		store = stateMgr
		defer stateMgr.Close()
	}

	loop := clock.NewLoop()
	m, err := page.New(p, cfg, page.Deps{
		Clock:    loop,
		State:    store,
		StateErr: stateErr,
		Now:      time.Now,
	})
	if err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	loop.Bind(prog.Send)

	final, err := prog.Run()
	if pm, ok := final.(page.Model); ok {
		pm.Close()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
