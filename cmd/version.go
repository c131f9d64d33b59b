package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// repository is the GitHub slug releases are published under
const repository = "s0up4200/itunesapi"

var (
	appVersion = "dev"
	buildTime  = "unknown"

	checkLatest bool
)

// SetVersion records the build information injected by main
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&checkLatest, "check", false, "check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "itunesapi %s (built %s, %s/%s)\n", appVersion, buildTime, runtime.GOOS, runtime.GOARCH)

	if !checkLatest {
		return nil
	}

	latest, found, err := detectLatest(commandContext(cmd))
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(out, "No release found")
		return nil
	}

	newer, err := isNewer(appVersion, latest.Version())
	if err != nil {
		logger.Debug().Err(err).Msg("Cannot compare versions")
		fmt.Fprintf(out, "Latest release: %s\n", latest.Version())
		return nil
	}
	if newer {
		fmt.Fprintf(out, "A newer release is available: %s (run 'itunesapi update')\n", latest.Version())
	} else {
		fmt.Fprintln(out, "You are running the latest release")
	}
	return nil
}

// detectLatest looks up the latest release for the running platform
func detectLatest(ctx context.Context) (*selfupdate.Release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return nil, false, fmt.Errorf("failed to detect latest release: %w", err)
	}
	return latest, found, nil
}

// isNewer reports whether candidate is a higher semantic version than current.
// Both may carry a leading "v".
func isNewer(current, candidate string) (bool, error) {
	cur, err := semver.ParseTolerant(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version %q: %w", current, err)
	}
	next, err := semver.ParseTolerant(candidate)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", candidate, err)
	}
	return next.GT(cur), nil
}
