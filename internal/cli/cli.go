// Package cli implements the fetch command line: a cobra command tree whose
// persistent flags are merged with FETCH_* environment variables and an
// optional config file through viper.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raysh454/fetchurl/internal/app"
	"github.com/raysh454/fetchurl/internal/fetcher"
)

// ExitUsage is returned for invalid flags, arguments or configuration.
const ExitUsage = 2

// Build information, set with -ldflags "-X".
var (
	Version   = "dev"
	GitCommit = "none"
	BuildTime = "unknown"
)

// Run executes the command line in args (without the program name) and
// returns the process exit code. It never reads os.Args.
func Run(args []string, stdout, stderr io.Writer) int {
	code := fetcher.ExitOK
	v := viper.New()
	root := newRootCmd(v, stdout, stderr, &code)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return code
}

func newRootCmd(v *viper.Viper, stdout, stderr io.Writer, code *int) *cobra.Command {
	fetchURL := func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}
		a, err := app.NewApplication(cfg, stdout, stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		*code = a.Run(cmd.Context(), args[0])
		return nil
	}

	root := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a URL and print it or save it to a file",
		Long: `fetch performs one HTTP GET of the given URL.

Text responses (Content-Type starting with "text") are printed to stdout.
Anything else is held back unless --out-file is given, in which case the raw
body is written to that file whatever its type.

Every flag can also be set with a FETCH_ environment variable, for example
FETCH_NO_VERIFY=true or FETCH_OUT_FILE=page.html.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          fetchURL,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindConfig(v, cmd.Root())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetContext(context.Background())

	addPersistentFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "url <url>",
		Short: "Fetch a URL (same as the root command)",
		Args:  cobra.ExactArgs(1),
		RunE:  fetchURL,
	})
	root.AddCommand(newHistoryCmd(v, stdout, stderr))
	root.AddCommand(newVersionCmd(stdout))

	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "Fetch Version: %s\n", Version)
			fmt.Fprintf(stdout, "Git Commit: %s\n", GitCommit)
			fmt.Fprintf(stdout, "Build Time: %s\n", BuildTime)
		},
	}
}
