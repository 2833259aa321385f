package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raysh454/fetchurl/internal/app"
	"github.com/raysh454/fetchurl/internal/logging"
	"github.com/raysh454/fetchurl/internal/model"
)

func newHistoryCmd(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List fetches recorded with --history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if cfg.Tracker.Path == "" {
				return errors.Errorf("--%s PATH (or FETCH_HISTORY) is required", keyHistory)
			}
			if limit < 0 {
				return errors.New("--limit must not be negative")
			}

			logger := logging.New(stderr, cfg.LogLevel())
			defer logger.Sync()

			entries, err := app.History(cmd.Context(), &cfg.Tracker, limit, logger)
			if err != nil {
				return err
			}
			return printHistory(stdout, entries)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Show at most this many entries (0 shows all)")
	return cmd
}

func printHistory(w io.Writer, entries []*model.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No fetches recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FETCHED AT\tSTATUS\tOUTCOME\tSIZE\tCONTENT-TYPE\tURL")
	for _, e := range entries {
		status := "-"
		if e.StatusCode != 0 {
			status = fmt.Sprint(e.StatusCode)
		}
		contentType := e.ContentType
		if contentType == "" {
			contentType = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			e.FetchedAt.Local().Format("2006-01-02 15:04:05"), status, e.Outcome, e.Size, contentType, e.URL)
	}
	return tw.Flush()
}
