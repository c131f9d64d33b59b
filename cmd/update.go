package cmd

import (
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

var forceUpdate bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the running binary with the latest release",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&forceUpdate, "force", false, "update even when the current version cannot be compared")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	latest, found, err := detectLatest(ctx)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no release found for %s", repository)
	}

	newer, err := isNewer(appVersion, latest.Version())
	switch {
	case err != nil && !forceUpdate:
		return fmt.Errorf("%w (use --force to update anyway)", err)
	case err == nil && !newer:
		fmt.Fprintf(out, "Already up to date (%s)\n", appVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().
		Str("from", appVersion).
		Str("to", latest.Version()).
		Str("asset", latest.AssetName).
		Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "Updated to %s\n", latest.Version())
	return nil
}
