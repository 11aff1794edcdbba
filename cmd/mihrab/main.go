package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mihrab-app/mihrab/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "mihrab",
		Short:   "Prayer times and Quran in your terminal",
		Version: version.Get(),
		RunE:    runTUI,
	}

	rootCmd.AddCommand(
		todayCmd(),
		nextCmd(),
		surahCmd(),
		juzCmd(),
		cacheCmd(),
		upgradeCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
