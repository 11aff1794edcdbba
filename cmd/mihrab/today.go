package main

import (
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mihrab-app/mihrab/internal/prayer"
)

const dateLayout = "2006-01-02"

func todayCmd() *cobra.Command {
	var (
		dateFlag string
		jsonFlag bool
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the day's timetable",
		Long:  "Prints all six prayer times for today, or for an explicit --date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newAppDeps()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Close() }()

			date := time.Now().In(deps.Location)
			if dateFlag != "" {
				date, err = time.ParseInLocation(dateLayout, dateFlag, deps.Location)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateFlag)
				}
			}

			day, err := deps.Loader.Load(cmd.Context(), date)
			if err != nil {
				return err
			}

			if jsonFlag {
				return printDayJSON(day)
			}

			printDay(day, deps.Config.ClockLayout())
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "date to print (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print as JSON")

	return cmd
}

func printDay(day prayer.Day, layout string) {
	fmt.Println(day.Date.Format("Monday, 2 January 2006"))
	if day.Hijri != "" {
		fmt.Println(day.Hijri)
	}
	fmt.Println()

	for _, name := range prayer.Order {
		marker := " "
		if !name.Canonical() {
			marker = "·"
		}
		fmt.Printf("%s %-8s %-8s %s\n", marker, name.Display(), day.Time(name).Format(layout), name.Arabic())
	}
}

func printDayJSON(day prayer.Day) error {
	type entry struct {
		Name string `json:"name"`
		Time string `json:"time"`
	}
	out := struct {
		Date    string  `json:"date"`
		Hijri   string  `json:"hijri,omitempty"`
		Prayers []entry `json:"prayers"`
	}{
		Date:  day.Date.Format(dateLayout),
		Hijri: day.Hijri,
	}
	for _, name := range prayer.Order {
		out.Prayers = append(out.Prayers, entry{
			Name: string(name),
			Time: day.Time(name).Format(time.RFC3339),
		})
	}

	data, err := go_json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal timetable: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
