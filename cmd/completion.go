package cmd

import (
	"flag"

	"github.com/etnz/marketshare/docs"
	"github.com/etnz/marketshare/sheet"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictMetric = predict.Set{"share", "revenue", "units"}
	predictFormat = predict.Set{string(sheet.CSV), string(sheet.XLSX), string(sheet.JSON)}
	predictBy     = predict.Set{"category", "year", "marketplace", "category,year", "category,marketplace", "marketplace,year"}
)

// flagPredictors predicts the values of the flags that take a known set.
var flagPredictors = map[string]complete.Predictor{
	"metric": predictMetric,
	"format": predictFormat,
	"by":     predictBy,
	"source": predict.Files("*"),
	"o":      predict.Files("*"),
}

// flagsOf returns the predictors of the flags of f. Boolean flags take no
// value and have a nil predictor.
func flagsOf(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = nil
		} else if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
		} else {
			flags[fl.Name] = predict.Set{}
		}
	})
	return flags
}

// Completion returns the completion tree of the commands registered in c,
// with the global flags of top.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{Sub: make(map[string]*complete.Command), Flags: flagsOf(top)}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: flagsOf(f)}
		if cmd.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(append(topics, "readme", docs.All))
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}
