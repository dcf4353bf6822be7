package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"crmctl/internal/config"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the default owner/name release binaries are fetched from.
// It is a placeholder until crmctl has a published home; release builds set
// it with -ldflags "-X crmctl/cmd.githubRepoSlug=owner/name".
var githubRepoSlug = "crmctl/crmctl"

// updateRepoEnv overrides githubRepoSlug at run time.
const updateRepoEnv = config.EnvPrefix + "_UPDATE_REPO"

func newSelfUpdateCmd() *cobra.Command {
	var repo string
	c := &cobra.Command{
		Use:   "self-update",
		Short: "Update crmctl to the latest version",
		Long: `Checks for the latest release of crmctl on GitHub and
replaces the running binary when a newer version is available.

Releases are looked up in the repository given by --repo, falling back
to ` + updateRepoEnv + ` and then to the repository the binary was built for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate(cmd, repo)
		},
	}
	c.Flags().StringVar(&repo, "repo", "", "GitHub repository (owner/name) to fetch releases from")
	return c
}

// updateRepo picks the release repository: flag, then environment, then the
// build default.
func updateRepo(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(updateRepoEnv); env != "" {
		return env
	}
	return githubRepoSlug
}

func validateRepoSlug(slug string) error {
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid release repository %q: expected owner/name", slug)
	}
	return nil
}

func runSelfUpdate(cmd *cobra.Command, repoFlag string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	repo := updateRepo(repoFlag)
	if err := validateRepoSlug(repo); err != nil {
		return err
	}

	ctx := context.Background()
	var out io.Writer = os.Stdout
	if cmd != nil {
		out = cmd.OutOrStdout()
		if cmd.Context() != nil {
			ctx = cmd.Context()
		}
	}

	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintf(out, "Checking %s for updates...\n", repo)

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found in %s", runtime.GOOS, runtime.GOARCH, repo)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(out, "Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Fprintf(out, "Updating to %s...\n", latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}
