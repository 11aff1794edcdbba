package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mihrab-app/mihrab/internal/config"
	"github.com/mihrab-app/mihrab/internal/quran"
)

func surahCmd() *cobra.Command {
	var (
		listFlag        bool
		translationFlag bool
	)

	cmd := &cobra.Command{
		Use:   "surah [number]",
		Short: "Print a surah, or list all 114",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listFlag || len(args) == 0 {
				return printSurahList()
			}

			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid surah number %q", args[0])
			}

			showTranslation := translationFlag
			if !cmd.Flags().Changed("translation") {
				cfg, err := config.Read()
				if err != nil {
					return err
				}
				showTranslation = cfg.Translation
			}

			return printSurah(number, showTranslation)
		},
	}

	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list all surahs")
	cmd.Flags().BoolVar(&translationFlag, "translation", true, "include translation and transliteration")

	return cmd
}

func printSurahList() error {
	surahs, err := quran.Surahs()
	if err != nil {
		return err
	}

	bundled, err := quran.Bundled()
	if err != nil {
		return err
	}
	hasText := make(map[int]bool, len(bundled))
	for _, n := range bundled {
		hasText[n] = true
	}

	for _, s := range surahs {
		marker := " "
		if hasText[s.Number] {
			marker = "*"
		}
		fmt.Printf("%3d%s %-14s %-24s %3d verses  %s\n",
			s.Number, marker, s.Name, s.Meaning, s.Verses, s.Arabic)
	}
	fmt.Println("\n* full text bundled")

	return nil
}

func printSurah(number int, showTranslation bool) error {
	s, err := quran.SurahByNumber(number)
	if err != nil {
		return err
	}

	fmt.Printf("%d. %s (%s)\n", s.Number, s.Name, s.Arabic)
	fmt.Printf("%s · %s · %d verses\n\n", s.Meaning, s.Revelation, s.Verses)

	verses, err := quran.Verses(number)
	if errors.Is(err, quran.ErrTextNotBundled) {
		fmt.Println("text for this surah is not bundled")
		return nil
	}
	if err != nil {
		return err
	}

	for _, v := range verses {
		fmt.Printf("%d:%d\n  %s\n", v.Surah, v.Number, v.Arabic)
		if showTranslation {
			fmt.Printf("  %s\n  %s\n", v.Translation, v.Transliteration)
		}
		fmt.Println()
	}

	return nil
}
