package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihrab-app/mihrab/internal/quran"
)

func juzCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "juz",
		Short: "List the thirty divisions of the Quran",
		RunE: func(cmd *cobra.Command, args []string) error {
			divisions, err := quran.JuzDivisions()
			if err != nil {
				return err
			}

			surahs, err := quran.Surahs()
			if err != nil {
				return err
			}

			for _, j := range divisions {
				name := ""
				if j.Surah >= 1 && j.Surah <= len(surahs) {
					name = surahs[j.Surah-1].Name
				}
				fmt.Printf("juz %2d  starts at %d:%d (%s)\n", j.Number, j.Surah, j.Verse, name)
			}

			return nil
		},
	}
}
