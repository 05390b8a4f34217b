package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// fileFlags are the flags naming an input file.
var fileFlags = map[string]complete.Predictor{
	"t":      predict.Files("*.csv"),
	"p":      predict.Files("*"),
	"o":      predict.Files("*.yaml"),
	"config": predict.Files("*.yaml"),
}

// Completion returns the shell completion of the application, derived from
// the flags of every command.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	root.Sub["topic"].Args = predict.Set(topicNames())
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		if p, ok := fileFlags[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
