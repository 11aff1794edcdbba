package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/mihrab-app/mihrab/internal/client/github"
	"github.com/mihrab-app/mihrab/internal/version"
)

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			currentVersion := version.Get()

			client := github.NewClient()
			latest, err := client.GetLatestRelease(ctx, "mihrab-app", "mihrab")
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !version.IsNewer(currentVersion, latest.TagName) {
				fmt.Printf("mihrab is up to date (%s)\n", currentVersion)
				return nil
			}

			fmt.Printf("Updating mihrab %s to %s\n", currentVersion, latest.TagName)

			return goInstallUpgrade(ctx)
		},
	}
}

func goInstallUpgrade(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "go", "install", "github.com/mihrab-app/mihrab/cmd/mihrab@latest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("upgrade failed: %w", err)
	}
	fmt.Println("Successfully updated!")
	return nil
}
