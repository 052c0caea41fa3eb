package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/store"
)

var (
	historyLimit   int
	historyProject string
	historyShow    string
	historyDelete  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List designs recorded with --record",
	Long: `List, show or delete designs recorded in the history database.

The database location is set by GOSTEEL_HISTORY_DB and defaults to
gosteel/history.db in the user configuration directory.

Examples:
  gosteel history
  gosteel history --project Warehouse --limit 5
  gosteel history --show 3f1c2a9e-...
  gosteel history --delete 3f1c2a9e-...`,
	Run: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of designs listed (0 for all)")
	historyCmd.Flags().StringVar(&historyProject, "project", "", "Only list designs of this project")
	historyCmd.Flags().StringVar(&historyShow, "show", "", "Print the full result of the design with this ID")
	historyCmd.Flags().StringVar(&historyDelete, "delete", "", "Delete the design with this ID")
}

func runHistory(cmd *cobra.Command, args []string) {
	db, err := store.NewDB(cfg.HistoryDB)
	if err != nil {
		exitWithError(err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := &store.DesignRepo{}

	switch {
	case historyDelete != "":
		if err := repo.Delete(ctx, db, historyDelete); err != nil {
			exitWithError(err)
		}
		log.WithField("id", historyDelete).Info("design deleted")
		fmt.Printf("Deleted %s\n", historyDelete)
		return

	case historyShow != "":
		rec, err := repo.Get(ctx, db, historyShow)
		if err != nil {
			exitWithError(err)
		}
		r, err := rec.Result()
		if err != nil {
			exitWithError(err)
		}
		structured, err := writeStructured(r)
		if err != nil {
			exitWithError(err)
		}
		if !structured {
			printBanner(fmt.Sprintf("RECORDED %s DESIGN - %s", upperKind(rec.Kind), rec.CreatedAt.Local().Format("02 Jan 2006 15:04")))
			printDesignResult(r)
		}
		return
	}

	records, err := repo.List(ctx, db, historyProject, historyLimit)
	if err != nil {
		exitWithError(err)
	}

	structured, err := writeStructured(records)
	if err != nil {
		exitWithError(err)
	}
	if structured {
		return
	}

	printBanner("DESIGN HISTORY")
	if len(records) == 0 {
		fmt.Println("  No designs recorded. Use --record with beam design or purlin design.")
		fmt.Println()
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tDate\tKind\tName\tProject\tSpan (m)\tM (kN-m)\tSection\tGrade\tStatus\n")
	fmt.Fprintf(w, "  ──\t────\t────\t────\t───────\t────────\t────────\t───────\t─────\t──────\n")
	for _, r := range records {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Kind, r.Name, r.Project,
			r.Span, r.Moment, r.SectionName, r.SteelGrade, r.OverallStatus)
	}
	w.Flush()
	fmt.Println()
}

func upperKind(kind string) string {
	if kind == "purlin" {
		return "PURLIN"
	}
	return "BEAM"
}
