// Package cmd implements the msr command line application.
package cmd

import (
	"cmp"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marketshare"
	"github.com/etnz/marketshare/sheet"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes the environment variables holding flag defaults.
const EnvPrefix = "MSR"

// Config holds the global settings of the application.
type Config struct {
	Source   string `envconfig:"SOURCE"`
	Format   string `envconfig:"FORMAT"`
	JSONPath string `envconfig:"JSON_PATH" default:"$[*]"`
	Sheet    string `envconfig:"SHEET"`
	Currency string `envconfig:"CURRENCY" default:"IDR"`
	Model    string `envconfig:"MODEL" default:"gemini-2.5-flash"`
	NoCache  bool   `envconfig:"NO_CACHE"`
	Raw      bool   `envconfig:"RAW"`
	JSON     bool   `envconfig:"JSON"`
}

// LoadConfig reads the defaults from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return c, fmt.Errorf("invalid environment: %w", err)
	}
	c.Source = cmp.Or(c.Source, sheet.DefaultURL)
	return c, nil
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var global Config

// RegisterFlags declares the global flags on fs, with defaults read from the
// environment.
func RegisterFlags(fs *flag.FlagSet) error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	global = c
	fs.StringVar(&global.Source, "source", c.Source, "URL or path of the feed")
	fs.StringVar(&global.Format, "format", c.Format, "feed format: csv, xlsx or json. Detected from the source by default")
	fs.StringVar(&global.JSONPath, "json-path", c.JSONPath, "JSONPath selecting the rows of a json feed")
	fs.StringVar(&global.Sheet, "sheet", c.Sheet, "worksheet of an xlsx feed, the first one by default")
	fs.StringVar(&global.Currency, "currency", c.Currency, "ISO 4217 code of the revenue currency")
	fs.StringVar(&global.Model, "model", c.Model, "Gemini model used by insight")
	fs.BoolVar(&global.NoCache, "no-cache", c.NoCache, "always download the feed")
	fs.BoolVar(&global.Raw, "raw", c.Raw, "print markdown without terminal rendering")
	fs.BoolVar(&global.JSON, "json", c.JSON, "print raw values as json")
	return nil
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&domainCmd{}, "data")
	c.Register(&browseCmd{}, "data")

	c.Register(&summaryCmd{}, "views")
	c.Register(&trendCmd{}, "views")
	c.Register(&gapCmd{}, "views")
	c.Register(&contributionCmd{}, "views")
	c.Register(&distributionCmd{}, "views")

	c.Register(&exportCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")
	c.Register(&insightCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

func source() (sheet.Source, error) {
	src := sheet.Source{Location: global.Source, JSONPath: global.JSONPath, Sheet: global.Sheet}
	if global.Format != "" {
		f, err := sheet.ParseFormat(global.Format)
		if err != nil {
			return src, err
		}
		src.Format = f
	}
	return src, nil
}

// loadDataset loads the feed from the global source.
func loadDataset(ctx context.Context) (*marketshare.Dataset, error) {
	src, err := source()
	if err != nil {
		return nil, err
	}
	client := http.DefaultClient
	if !global.NoCache {
		client = sheet.DailyClient()
	}
	return sheet.Load(ctx, client, src)
}

func formatter() marketshare.Formatter {
	return marketshare.NewFormatter(global.Currency)
}

// printMarkdown renders markdown for the terminal, unless -raw is set.
func printMarkdown(md string) {
	if global.Raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Printf("cannot render markdown (printing raw): %v", err)
	fmt.Print(md)
}

func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding json: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
