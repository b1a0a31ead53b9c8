package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/marketshare/sheet"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MSR_SOURCE", "")
	t.Setenv("MSR_CURRENCY", "")
	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if c.Source != sheet.DefaultURL {
		t.Errorf("LoadConfig().Source = %q, want the default feed", c.Source)
	}
	if c.JSONPath != "$[*]" {
		t.Errorf("LoadConfig().JSONPath = %q, want %q", c.JSONPath, "$[*]")
	}

	t.Setenv("MSR_SOURCE", "feed.csv")
	t.Setenv("MSR_CURRENCY", "USD")
	t.Setenv("MSR_RAW", "true")
	c, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if c.Source != "feed.csv" || c.Currency != "USD" || !c.Raw {
		t.Errorf("LoadConfig() = %+v, want the environment values", c)
	}

	t.Setenv("MSR_RAW", "maybe")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() with an invalid boolean expected an error")
	}
}

func TestRegisterFlags(t *testing.T) {
	old := global
	t.Cleanup(func() { global = old })
	t.Setenv("MSR_CURRENCY", "EUR")

	fs := flag.NewFlagSet("msr", flag.ContinueOnError)
	if err := RegisterFlags(fs); err != nil {
		t.Fatalf("RegisterFlags() unexpected error: %v", err)
	}
	if global.Currency != "EUR" {
		t.Errorf("currency default = %q, want the environment value EUR", global.Currency)
	}
	if err := fs.Parse([]string{"-currency", "USD", "-source", "x.json", "-json"}); err != nil {
		t.Fatal(err)
	}
	if global.Currency != "USD" || global.Source != "x.json" || !global.JSON {
		t.Errorf("global = %+v, want the flag values", global)
	}
}

func TestExtensionEnv(t *testing.T) {
	old := global
	t.Cleanup(func() { global = old })
	global = Config{
		Source:   "https://example.com/feed?format=json",
		Format:   "json",
		JSONPath: "$.rows[*]",
		Sheet:    "2024",
		Currency: "USD",
		Model:    "gemini-2.5-pro",
		NoCache:  true,
		Raw:      true,
	}
	for _, kv := range extensionEnv() {
		k, v, _ := strings.Cut(kv, "=")
		t.Setenv(k, v)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if diff := cmp.Diff(global, got); diff != "" {
		t.Errorf("extension config mismatch (-want +got):\n%s", diff)
	}
}

func TestSource(t *testing.T) {
	old := global
	t.Cleanup(func() { global = old })

	global = Config{Source: "feed.xlsx", Sheet: "data"}
	src, err := source()
	if err != nil {
		t.Fatalf("source() unexpected error: %v", err)
	}
	if src.Location != "feed.xlsx" || src.Sheet != "data" || src.Format != "" {
		t.Errorf("source() = %+v", src)
	}

	global.Format = "parquet"
	if _, err := source(); err == nil {
		t.Error("source() with an unknown format expected an error")
	}
}

func TestPublish(t *testing.T) {
	useFeed(t)
	out := filepath.Join(t.TempDir(), "report.md")

	c := &publishCmd{output: out, title: "Q4 Review", metric: "revenue"}
	c.sel.years = "2024"
	if status := c.Execute(context.Background(), flag.NewFlagSet("publish", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("publish exited with %v", status)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(content)
	for _, want := range []string{"# Q4 Review", "*Selection: years 2024*", "## Distribution", "| Tokopedia |"} {
		if !strings.Contains(doc, want) {
			t.Errorf("report does not contain %q:\n%s", want, doc)
		}
	}
	// a single year is selected.
	if strings.Contains(doc, " gap ") {
		t.Errorf("report contains a gap section:\n%s", doc)
	}

	c = &publishCmd{output: out, title: "Q4 Review", metric: "share", html: true}
	if status := c.Execute(context.Background(), flag.NewFlagSet("publish", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("publish -html exited with %v", status)
	}
	content, err = os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "<h1>Q4 Review</h1>") {
		t.Errorf("html report does not contain the title:\n%s", content)
	}
}

func TestExport(t *testing.T) {
	useFeed(t)
	out := filepath.Join(t.TempDir(), "report.xlsx")

	c := &exportCmd{output: out, metric: "share"}
	if status := c.Execute(context.Background(), flag.NewFlagSet("export", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("export exited with %v", status)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gap, err := sheet.ReadXLSX(f, "gap")
	if err != nil {
		t.Fatalf("ReadXLSX() unexpected error: %v", err)
	}
	want := [][]string{
		{"Beauty", "N/A", "10", "N/A", "N/A"},
		{"Fashion", "30", "30", "0", "0"},
	}
	if diff := cmp.Diff(want, gap.Rows); diff != "" {
		t.Errorf("gap worksheet mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_Errors(t *testing.T) {
	useFeed(t)
	ctx := context.Background()
	f := flag.NewFlagSet("test", flag.ContinueOnError)

	tests := []struct {
		name string
		cmd  subcommands.Command
		want subcommands.ExitStatus
	}{
		{"unknown metric", &gapCmd{metric: "profit"}, subcommands.ExitUsageError},
		{"unknown dimension", &summaryCmd{by: "brand"}, subcommands.ExitUsageError},
		{"single year gap", &gapCmd{metric: "share", sel: selectionFlags{years: "2024"}}, subcommands.ExitFailure},
		{"invalid sort", &distributionCmd{sort: sortFlag{order: "share_pct:sideways"}}, subcommands.ExitFailure},
		{"invalid year", &browseCmd{sel: selectionFlags{years: "last"}}, subcommands.ExitFailure},
		{"gap", &gapCmd{metric: "units"}, subcommands.ExitSuccess},
		{"year over year", &gapCmd{metric: "share", yoy: true, sort: sortFlag{order: "gap"}}, subcommands.ExitSuccess},
		{"contribution", &contributionCmd{}, subcommands.ExitSuccess},
		{"trend detail", &trendCmd{metric: "share", detail: true}, subcommands.ExitSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Execute(ctx, f); got != tt.want {
				t.Errorf("Execute() = %v, want %v", got, tt.want)
			}
		})
	}

	global.Source = filepath.Join(t.TempDir(), "missing.csv")
	if got := (&domainCmd{}).Execute(ctx, f); got != subcommands.ExitFailure {
		t.Errorf("domain on a missing feed = %v, want %v", got, subcommands.ExitFailure)
	}
}

func TestCompletion(t *testing.T) {
	top := flag.NewFlagSet("msr", flag.ContinueOnError)
	top.String("source", "", "")
	top.Bool("raw", false, "")
	c := subcommands.NewCommander(top, "msr")
	Register(c)

	root := Completion(c, top)
	if _, ok := root.Flags["source"]; !ok {
		t.Error("Completion() misses the -source flag")
	}
	if p := root.Flags["raw"]; p != nil {
		t.Errorf("Completion() -raw predictor = %v, want nil for a boolean flag", p)
	}
	gap, ok := root.Sub["gap"]
	if !ok {
		t.Fatal("Completion() misses the gap command")
	}
	if got := gap.Flags["metric"].Predict(""); !cmp.Equal(got, []string{"share", "revenue", "units"}) {
		t.Errorf("gap -metric predictions = %v", got)
	}
	if got := root.Sub["topic"].Args.Predict(""); !slices.Contains(got, "sorting") {
		t.Errorf("topic predictions = %v, want sorting among them", got)
	}
}
