// Package cmd implements the wif CLI application: it compares a brokerage
// account with a single index fund bought with the same deposits.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/whatif"
	"github.com/etnz/whatif/config"
	"github.com/etnz/whatif/date"
	"github.com/etnz/whatif/logging"
	"github.com/etnz/whatif/renderer"
	"github.com/etnz/whatif/source"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands are all the subcommands of the application.
var Commands = []subcommands.Command{
	&compareCmd{},
	&timelineCmd{},
	&depositsCmd{},
	&priceCmd{},
	&configInitCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the configuration file (defaults to "+config.DefaultFileName+" if it exists)")
	logLevel   = flag.String("log-level", "warn", "Level of the traces on stderr: debug, info, warn, error or disabled")
	logFile    = flag.String("log-file", "", "Path to a rotated log file, none if empty")
)

// stdout is where the commands write their result.
var stdout io.Writer = os.Stdout

// app is what every command needs: the configuration and a logger.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// newApp reads the configuration file and opens the logs.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level = *logLevel
	lc.FilePath = *logFile
	logger, closer, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("cannot open logs: %w", err)
	}
	return &app{cfg: cfg, log: logger, closer: closer}, nil
}

func (a *app) Close() error { return a.closer.Close() }

// options returns the engine options for the configuration, plus 'extra'.
func (a *app) options(extra ...whatif.Option) []whatif.Option {
	return append(a.cfg.Options(a.log), extra...)
}

func (a *app) format() renderer.Format {
	return renderer.Format{Ticker: a.cfg.Ticker, Currency: a.cfg.Currency}
}

// loadConfig reads the -config file, or the default file if it exists, or
// falls back to the default configuration.
func loadConfig() (*config.Config, error) {
	if *configFile != "" {
		return config.ReadConfig(*configFile)
	}
	if _, err := os.Stat(config.DefaultFileName); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.ReadConfig(config.DefaultFileName)
}

// readTransactions reads the account activity CSV file.
func (a *app) readTransactions(path string) ([]whatif.Row, error) {
	if path == "" {
		return nil, errors.New("missing transactions file (-t)")
	}
	rows, err := source.ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Info().Str("file", path).Int("rows", len(rows)).Msg("transactions read")
	return rows, nil
}

// readPrices reads the price history file in the configured format, or
// downloads it if 'path' is a URL.
func (a *app) readPrices(ctx context.Context, path string) ([]whatif.Row, error) {
	if path == "" {
		return nil, errors.New("missing price history file (-p)")
	}
	var rows []whatif.Row
	var err error
	switch {
	case source.IsURL(path):
		rows, err = source.FetchJSON(ctx, source.DailyClient(os.TempDir(), a.log), path, a.cfg.JSONPath, a.cfg.Fields)
	case a.cfg.PriceFormat == config.FormatJSON:
		rows, err = source.ReadJSONFile(path, a.cfg.JSONPath, a.cfg.Fields)
	default:
		rows, err = source.ReadCSVFile(path)
	}
	if err != nil {
		return nil, err
	}
	a.log.Info().Str("file", path).Str("format", a.cfg.PriceFormat).Int("rows", len(rows)).Msg("prices read")
	return rows, nil
}

// parseDate parses an optional date flag.
func parseDate(name, value string) (date.Date, error) {
	if value == "" {
		return date.Date{}, nil
	}
	d, err := date.Parse(value)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid -%s: %w", name, err)
	}
	return d, nil
}

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// the raw markdown is still readable.
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// fail reports an error on stderr and returns the exit status.
func fail(status subcommands.ExitStatus, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return status
}
