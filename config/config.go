// Package config reads the YAML configuration file of the wif command.
//
// Every key is optional: an absent key keeps the default of the Robinhood
// account activity and Investing.com price history exports.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/whatif"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the name of the configuration file in the working directory.
const DefaultFileName = "wif.yaml"

// Price history file formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Template is the default configuration file, with comments.
// yaml.v3 does not preserve comments, so the template is hardcoded.
const Template = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The index fund the deposits are compared with.
proxy:
  # Display name of the proxy instrument.
  ticker: VTI
  # Currency of the account, used to format amounts.
  currency: USD
# How the account activity export is read.
deposits:
  # Transaction code of cash transfers.
  code: ACH
  # Description of a genuine deposit, compared case-insensitively.
  deposit_marker: ACH Deposit
  # Description of a cancelled deposit. Cancelled deposits are reported, never netted.
  cancel_marker: ACH Cancel
  # Codes known to be outside the model (trades, dividends, fees...).
  #
  # Optional. Defaults to the codes of a Robinhood export.
  # excluded: [Buy, Sell, CDIV, INT]
  # Column names of the export.
  #
  # Optional. Only the overridden columns need to be listed.
  # columns:
  #   activity_date: Activity Date
  #   code: Trans Code
  #   amount: Amount
# How the price history is read.
prices:
  # Format of the price history file: csv or json.
  format: csv
  # Resolution of two prices on the same date: last, first or reject.
  duplicates: last
  # JSONPath of the array of price objects, for the json format.
  # json_path: $.data
  # Renaming of the JSON object fields to column names, for the json format.
  # fields:
  #   date: Date
  #   close: Price
  # Column names of the price history.
  #
  # Optional. Only the overridden columns need to be listed.
  # columns:
  #   date: Date
  #   price: Price
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	Version  string                 `yaml:"version"`
	Proxy    ExternalProxyConfig    `yaml:"proxy"`
	Deposits ExternalDepositsConfig `yaml:"deposits"`
	Prices   ExternalPricesConfig   `yaml:"prices"`
}

// ExternalProxyConfig describes the proxy instrument.
type ExternalProxyConfig struct {
	Ticker   string `yaml:"ticker"`
	Currency string `yaml:"currency"`
}

// ExternalDepositsConfig holds the deposit policy and the transaction columns.
type ExternalDepositsConfig struct {
	Code          string            `yaml:"code"`
	DepositMarker string            `yaml:"deposit_marker"`
	CancelMarker  string            `yaml:"cancel_marker"`
	Excluded      []string          `yaml:"excluded"`
	Columns       map[string]string `yaml:"columns"`
}

// ExternalPricesConfig holds how the price history is read.
type ExternalPricesConfig struct {
	Format     string            `yaml:"format"`
	Duplicates string            `yaml:"duplicates"`
	JSONPath   string            `yaml:"json_path"`
	Fields     map[string]string `yaml:"fields"`
	Columns    map[string]string `yaml:"columns"`
}

// Config is the validated runtime configuration.
type Config struct {
	Ticker       string
	Currency     string
	Policy       whatif.DepositPolicy
	Duplicates   whatif.DuplicatePolicy
	Transactions whatif.TransactionColumns
	Prices       whatif.PriceColumns
	// PriceFormat is FormatCSV or FormatJSON.
	PriceFormat string
	// JSONPath selects the array of price objects in a JSON price history.
	JSONPath string
	// Fields renames JSON object fields to price columns.
	Fields map[string]string
}

// Default returns the configuration used when there is no configuration file.
func Default() *Config {
	return &Config{
		Ticker:       "VTI",
		Currency:     "USD",
		Policy:       whatif.DefaultDepositPolicy(),
		Duplicates:   whatif.LastWins,
		Transactions: whatif.DefaultTransactionColumns(),
		Prices:       whatif.DefaultPriceColumns(),
		PriceFormat:  FormatCSV,
		JSONPath:     "$",
	}
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(ext ExternalConfig) (*Config, error) {
	if ext.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", ext.Version)
	}
	cfg := Default()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Ticker, ext.Proxy.Ticker)
	set(&cfg.Currency, ext.Proxy.Currency)

	d := ext.Deposits
	if d.Code != "" {
		cfg.Policy.Code = whatif.TransCode(d.Code)
	}
	set(&cfg.Policy.DepositMarker, d.DepositMarker)
	set(&cfg.Policy.CancelMarker, d.CancelMarker)
	if len(d.Excluded) > 0 {
		cfg.Policy.Excluded = make([]whatif.TransCode, len(d.Excluded))
		for i, c := range d.Excluded {
			cfg.Policy.Excluded[i] = whatif.TransCode(c)
		}
	}
	if err := overrideColumns(d.Columns, map[string]*string{
		"activity_date": &cfg.Transactions.ActivityDate,
		"process_date":  &cfg.Transactions.ProcessDate,
		"settle_date":   &cfg.Transactions.SettleDate,
		"instrument":    &cfg.Transactions.Instrument,
		"description":   &cfg.Transactions.Description,
		"code":          &cfg.Transactions.Code,
		"quantity":      &cfg.Transactions.Quantity,
		"price":         &cfg.Transactions.Price,
		"amount":        &cfg.Transactions.Amount,
	}); err != nil {
		return nil, fmt.Errorf("deposits.columns: %w", err)
	}

	p := ext.Prices
	switch p.Format {
	case "", FormatCSV:
	case FormatJSON:
		cfg.PriceFormat = FormatJSON
	default:
		return nil, fmt.Errorf("prices.format: unsupported format %q, must be csv or json", p.Format)
	}
	dup, err := whatif.ParseDuplicatePolicy(p.Duplicates)
	if err != nil {
		return nil, fmt.Errorf("prices.duplicates: %w", err)
	}
	cfg.Duplicates = dup
	set(&cfg.JSONPath, p.JSONPath)
	cfg.Fields = p.Fields
	if err := overrideColumns(p.Columns, map[string]*string{
		"date":           &cfg.Prices.Date,
		"price":          &cfg.Prices.Price,
		"open":           &cfg.Prices.Open,
		"high":           &cfg.Prices.High,
		"low":            &cfg.Prices.Low,
		"volume":         &cfg.Prices.Volume,
		"change_percent": &cfg.Prices.ChangePercent,
	}); err != nil {
		return nil, fmt.Errorf("prices.columns: %w", err)
	}
	return cfg, nil
}

func overrideColumns(columns map[string]string, dst map[string]*string) error {
	for k, v := range columns {
		p, ok := dst[k]
		if !ok {
			return fmt.Errorf("unknown column %q", k)
		}
		if v == "" {
			return fmt.Errorf("column %q has no name", k)
		}
		*p = v
	}
	return nil
}

// Options returns the engine options of the configuration.
func (c *Config) Options(logger zerolog.Logger) []whatif.Option {
	return []whatif.Option{
		whatif.WithLogger(logger),
		whatif.WithDepositPolicy(c.Policy),
		whatif.WithDuplicatePolicy(c.Duplicates),
		whatif.WithTransactionColumns(c.Transactions),
		whatif.WithPriceColumns(c.Prices),
	}
}

// ReadConfig reads and validates the configuration file at 'path'.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"wif config-init\" to create one", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var ext ExternalConfig
	if err := unmarshalYAMLStrict(data, &ext); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return NewConfig(ext)
}

// InitConfig writes the Template to 'path', which must not exist yet.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(Template), 0o644)
}

// unmarshalYAMLStrict unmarshals the data as YAML and rejects unknown fields.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty file")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
