package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EZCampusDevs/dataScraper/lib/catalogstore/db"
	"github.com/EZCampusDevs/dataScraper/lib/configutil"
	configlibsql "github.com/EZCampusDevs/dataScraper/lib/configutil/libsql"
	"github.com/EZCampusDevs/dataScraper/lib/scrapers/banner"
	"github.com/EZCampusDevs/dataScraper/lib/serviceutil"
	"github.com/EZCampusDevs/dataScraper/lib/telemetry"
	"github.com/EZCampusDevs/dataScraper/services/catalog"
)

type Config struct {
	Database configlibsql.Struct `json:"database"`
	// extra institutions on top of the builtin list
	Profiles []banner.Profile `json:"profiles"`
}

var (
	configPath        string
	institutions      []string
	workers           int
	debugBreak        bool
	fetchRestrictions bool
)

var rootCmd = &cobra.Command{
	Use:   "scraped",
	Short: "Scrapes course catalogs from university registration backends.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := serviceutil.SignalContext()

		config, err := configutil.ReadConfig[Config](configPath)
		if os.IsNotExist(err) {
			config = Config{Database: configlibsql.Struct{File: "catalog.sqlite3"}}
		} else if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if config.Database.File == "" && config.Database.Url == "" {
			config.Database.File = "catalog.sqlite3"
		}

		database, err := config.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}

		t, err := telemetry.SetupFromEnv(ctx, "scraped")
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer t.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)

		profiles := append(catalog.BuiltinProfiles(), config.Profiles...)
		profiles = catalog.SelectProfiles(profiles, institutions)
		if len(profiles) == 0 {
			serviceutil.Fatal("no institutions selected", fmt.Errorf("known subdomains can be listed with --help"))
		}

		service := catalog.NewService(database)
		results, err := service.Run(ctx, profiles, catalog.Options{
			Workers:           workers,
			DebugBreak:        debugBreak,
			FetchRestrictions: fetchRestrictions,
		})
		if err != nil {
			serviceutil.Fatal("scrape run failed", err)
		}

		out := table.NewWriter()
		out.SetOutputMirror(os.Stdout)
		out.AppendHeader(table.Row{"Institution", "Terms", "Courses", "Sections", "Duration", "Error"})
		failed := false
		for _, r := range results {
			errText := ""
			if len(r.FailedTerms) > 0 {
				errText = fmt.Sprintf("abandoned terms: %s", strings.Join(r.FailedTerms, ", "))
			}
			if r.Err != nil {
				errText = r.Err.Error()
				failed = true
			}
			out.AppendRow(table.Row{
				r.Profile.Subdomain,
				r.Terms,
				r.Courses,
				r.Sections,
				r.Duration.Round(time.Millisecond),
				errText,
			})
		}
		out.SetStyle(table.StyleRounded)
		out.Render()

		if failed {
			os.Exit(1)
		}
	},
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.json5", "path to the config file")
	rootCmd.Flags().StringSliceVar(&institutions, "institutions", nil, "subdomains to scrape, defaults to all")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "institutions scraped concurrently")
	rootCmd.Flags().BoolVar(&debugBreak, "debug-break", false, "stop after the first page of the first term")
	rootCmd.Flags().BoolVar(&fetchRestrictions, "fetch-restrictions", false, "also scrape per-section registration restrictions")

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
