package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/mihrab-app/mihrab/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	deps, err := newAppDeps()
	if err != nil {
		return err
	}
	defer func() { _ = deps.Close() }()

	model := tui.New(tui.Deps{
		Ctx:        cmd.Context(),
		Logger:     deps.Logger,
		Config:     deps.Config,
		Location:   deps.Location,
		Loader:     deps.Loader,
		Repository: deps.Repository,
	})

	p := tea.NewProgram(&model)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
