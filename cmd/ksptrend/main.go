// Command ksptrend runs the trend engine over a corpus for one
// analyst session: ingest a CSV into SQLite, then query rising and
// falling keywords, theme trends, contrastive keywords, or excerpts.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/ksptrend/internal/loader"
	"github.com/cognicore/ksptrend/pkg/ksptrend"
	"github.com/cognicore/ksptrend/pkg/ksptrend/config"
	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
	"github.com/cognicore/ksptrend/pkg/ksptrend/store/sqlite"
)

var (
	dbPath       string
	csvPath      string
	stoplistPath string
	synonymsPath string
	themesPath   string
	paramsPath   string
	topN         int
	asJSON       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ksptrend",
	Short: "Keyword trend analysis over the KSP project corpus",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "ksptrend.db", "SQLite corpus database")
	rootCmd.PersistentFlags().StringVar(&stoplistPath, "stoplist", "", "Extra stoplist YAML")
	rootCmd.PersistentFlags().StringVar(&synonymsPath, "synonyms", "", "Synonym map YAML")
	rootCmd.PersistentFlags().StringVar(&themesPath, "themes", "", "Theme inventory YAML")
	rootCmd.PersistentFlags().StringVar(&paramsPath, "params", "", "Tuning parameters YAML")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")

	ingestCmd.Flags().StringVar(&csvPath, "csv", "", "CSV corpus export to ingest (required)")
	contrastCmd.Flags().IntVar(&topN, "top", 12, "Keywords to report")
	excerptsCmd.Flags().IntVar(&topN, "n", 5, "Excerpts to sample")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(excerptsCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load a CSV corpus export into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if csvPath == "" {
			return fmt.Errorf("--csv required")
		}
		ctx := context.Background()

		records, err := loader.LoadCSV(csvPath)
		if err != nil {
			return fmt.Errorf("load csv: %w", err)
		}

		st, err := sqlite.Open(ctx, dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n := 0
		for _, r := range records {
			if r.ID == "" {
				continue
			}
			if err := st.UpsertRecord(ctx, r); err != nil {
				return fmt.Errorf("upsert %s: %w", r.ID, err)
			}
			n++
		}
		log.Printf("ingested %d records into %s", n, dbPath)
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Report rising and falling keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, records, closeStore, err := setup()
		if err != nil {
			return err
		}
		defer closeStore()

		rep := engine.KeywordTrends(records, nil)
		if asJSON {
			return emitJSON(rep)
		}

		fmt.Printf("report %s over %d years\n", rep.ID, len(rep.Years))
		fmt.Println("rising:")
		for _, e := range rep.Rising {
			fmt.Printf("  %-24s %.3f\n", e.Token, e.Score)
		}
		fmt.Println("falling:")
		for _, e := range rep.Falling {
			fmt.Printf("  %-24s %.3f\n", e.Token, e.Score)
		}
		return nil
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Report rising and falling themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, records, closeStore, err := setup()
		if err != nil {
			return err
		}
		defer closeStore()

		rep := engine.ThemeTrends(records)
		if asJSON {
			return emitJSON(rep)
		}

		fmt.Println("rising themes:")
		for _, t := range rep.Rising {
			fmt.Printf("  %s\n", t)
		}
		fmt.Println("falling themes:")
		for _, t := range rep.Falling {
			fmt.Printf("  %s\n", t)
		}
		return nil
	},
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <class-column>=<value>",
	Short: "Rank keywords distinguishing a record class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, value, ok := strings.Cut(args[0], "=")
		if !ok {
			return fmt.Errorf("expected <class-column>=<value>, got %q", args[0])
		}

		engine, records, closeStore, err := setup()
		if err != nil {
			return err
		}
		defer closeStore()

		class, background := splitClass(records, field, value)
		if len(class) == 0 {
			return fmt.Errorf("no records match %s=%s", field, value)
		}

		rep := engine.ContrastKeywords(value, class, background, topN)
		if asJSON {
			return emitJSON(rep)
		}

		fmt.Printf("keywords for %s (%d vs %d records):\n", value, len(class), len(background))
		for _, kw := range rep.Keywords {
			fmt.Printf("  %-30s %.3f\n", kw.Display, kw.Score)
		}
		return nil
	},
}

var excerptsCmd = &cobra.Command{
	Use:   "excerpts <keyword>",
	Short: "Sample illustrative sentences for a keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, records, closeStore, err := setup()
		if err != nil {
			return err
		}
		defer closeStore()

		excerpts := engine.Excerpts(records, args[0], topN)
		if asJSON {
			return emitJSON(excerpts)
		}
		for _, ex := range excerpts {
			fmt.Printf("[%s] %s\n", ex.RecordID, ex.Sentence)
		}
		return nil
	},
}

// setup opens the store, lists the corpus, and builds an engine from
// the configured data files.
func setup() (*ksptrend.Engine, []record.Record, func(), error) {
	ctx := context.Background()

	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	records, err := st.ListRecords(ctx)
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("list records: %w", err)
	}

	l := config.Loader{
		StoplistPath: stoplistPath,
		SynonymsPath: synonymsPath,
		ThemesPath:   themesPath,
		ParamsPath:   paramsPath,
	}
	comp, err := l.Load()
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	engine, err := ksptrend.New(ksptrend.Options{
		Tokenizer: comp.Tokenizer,
		Themes:    comp.Themes,
		Trend:     comp.Trend,
		Yearspan:  comp.Yearspan,
		Contrast:  comp.Contrast,
	})
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	return engine, records, func() { st.Close() }, nil
}

func splitClass(records []record.Record, field, value string) (class, background []record.Record) {
	match := func(r record.Record) string {
		switch strings.ToLower(field) {
		case "topic":
			return r.Topic
		case "ict", "ict_class":
			return r.ICTClass
		case "country":
			return r.Country
		default:
			return ""
		}
	}
	for _, r := range records {
		if strings.EqualFold(strings.TrimSpace(match(r)), value) {
			class = append(class, r)
		} else {
			background = append(background, r)
		}
	}
	return class, background
}

func emitJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
