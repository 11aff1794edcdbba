package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local timetable cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newAppDeps()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Close() }()

			if err := deps.Repository.Timetables.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Println("timetable cache cleared")
			return nil
		},
	})

	return cmd
}
