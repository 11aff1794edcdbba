package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/timetable"
)

func nextCmd() *cobra.Command {
	var (
		watchFlag  bool
		jsonFlag   bool
		formatFlag string
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next prayer and the countdown to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newAppDeps()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Close() }()

			ctx := cmd.Context()
			now := func() time.Time { return time.Now().In(deps.Location) }

			render, err := snapshotRenderer(formatFlag, deps.Config.ClockLayout())
			if err != nil {
				return err
			}

			if !watchFlag {
				day, err := deps.Loader.Load(ctx, now())
				if err != nil {
					return err
				}
				snap := prayer.Compute(day, now())
				if jsonFlag {
					return printSnapshotJSON(snap)
				}
				line, err := render(snap)
				if err != nil {
					return err
				}
				fmt.Println(line)
				return nil
			}

			return watchLoop(ctx, deps.Loader, deps.Location, now, time.Second, render, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "update the countdown every second")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print as JSON")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "full",
		`output format: "full", "short", "remaining", or a Go template over
{{.Next}} {{.Arabic}} {{.Time}} {{.Tomorrow}} {{.Current}} {{.Countdown}} {{.Human}} {{.TotalSeconds}} {{.Urgent}}`)

	return cmd
}

// watchLoop rewrites one rendered snapshot line per tick until the context
// is cancelled. Each calendar day gets its own Watcher over that day's
// immutable timetable; on rollover the old watcher is cancelled, the
// timetable reloaded, and a fresh watcher started, so the countdown never
// pins on a stale day once tomorrow's fajr passes.
func watchLoop(
	ctx context.Context,
	loader *timetable.Loader,
	loc *time.Location,
	now func() time.Time,
	interval time.Duration,
	render func(prayer.Snapshot) (string, error),
	out io.Writer,
) error {
	for {
		day, err := loader.Load(ctx, now())
		if err != nil {
			return err
		}

		dayCtx, cancel := context.WithCancel(ctx)
		watcher := prayer.NewWatcher(day, prayer.WithClock(now), prayer.WithInterval(interval))
		go watcher.Run(dayCtx)

		rolled := false
		for snap := range watcher.Snapshots() {
			line, err := render(snap)
			if err != nil {
				cancel()
				return err
			}
			fmt.Fprintf(out, "\r\033[K%s", line)

			if !timetable.Midnight(now(), loc).Equal(day.Date) {
				rolled = true
				break
			}
		}
		cancel()

		if !rolled {
			// context cancelled, watcher drained
			fmt.Fprintln(out)
			return nil
		}
	}
}

// snapshotData is the template context for custom --format templates.
type snapshotData struct {
	Next         string
	Arabic       string
	Time         string
	Tomorrow     bool
	Current      string
	Countdown    string
	Human        string
	TotalSeconds int
	Urgent       bool
}

// snapshotRenderer resolves a --format value into a render function.
// Unrecognized names are parsed as Go templates, for status bars.
func snapshotRenderer(format, layout string) (func(prayer.Snapshot) (string, error), error) {
	switch format {
	case "full":
		return func(snap prayer.Snapshot) (string, error) {
			return formatSnapshot(snap, layout), nil
		}, nil
	case "short":
		return func(snap prayer.Snapshot) (string, error) {
			return fmt.Sprintf("%s %s", snap.Next.Name.Display(), snap.Next.Time.Format(layout)), nil
		}, nil
	case "remaining":
		return func(snap prayer.Snapshot) (string, error) {
			return snap.Countdown.HHMMSS(), nil
		}, nil
	}

	tmpl, err := template.New("next").Parse(format)
	if err != nil {
		return nil, fmt.Errorf("invalid format template: %w", err)
	}

	return func(snap prayer.Snapshot) (string, error) {
		var sb strings.Builder
		err := tmpl.Execute(&sb, snapshotData{
			Next:         snap.Next.Name.Display(),
			Arabic:       snap.Next.Name.Arabic(),
			Time:         snap.Next.Time.Format(layout),
			Tomorrow:     snap.NextIsTomorrow,
			Current:      string(snap.Current),
			Countdown:    snap.Countdown.HHMMSS(),
			Human:        snap.Countdown.Human(),
			TotalSeconds: snap.Countdown.TotalSeconds,
			Urgent:       snap.Countdown.IsUrgent,
		})
		if err != nil {
			return "", fmt.Errorf("executing format template: %w", err)
		}
		return sb.String(), nil
	}, nil
}

func formatSnapshot(snap prayer.Snapshot, layout string) string {
	when := snap.Next.Time.Format(layout)
	if snap.NextIsTomorrow {
		when += " tomorrow"
	}

	line := fmt.Sprintf("%s (%s) at %s, in %s",
		snap.Next.Name.Display(),
		snap.Next.Name.Arabic(),
		when,
		snap.Countdown.Human(),
	)
	if snap.Countdown.IsUrgent {
		line += " !"
	}
	return line
}

func printSnapshotJSON(snap prayer.Snapshot) error {
	out := struct {
		Next         string `json:"next"`
		Time         string `json:"time"`
		Tomorrow     bool   `json:"tomorrow"`
		Current      string `json:"current"`
		Countdown    string `json:"countdown"`
		TotalSeconds int    `json:"total_seconds"`
		Urgent       bool   `json:"urgent"`
	}{
		Next:         string(snap.Next.Name),
		Time:         snap.Next.Time.Format(time.RFC3339),
		Tomorrow:     snap.NextIsTomorrow,
		Current:      string(snap.Current),
		Countdown:    snap.Countdown.HHMMSS(),
		TotalSeconds: snap.Countdown.TotalSeconds,
		Urgent:       snap.Countdown.IsUrgent,
	}

	data, err := go_json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
