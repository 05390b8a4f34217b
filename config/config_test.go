package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/whatif"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", DefaultFileName)
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}
	if err := InitConfig(path); err == nil {
		t.Errorf("InitConfig() on an existing file succeeded, want an error")
	}

	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig(template) error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("ReadConfig(template) mismatch with Default() (-want +got):\n%s", diff)
	}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `version: v1
proxy:
  ticker: SPY
deposits:
  deposit_marker: Bank Transfer
  excluded: [Buy, Sell]
  columns:
    activity_date: Date
    amount: Net Amount
prices:
  format: json
  duplicates: reject
  json_path: $.data
  fields:
    close: Price
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	want := Default()
	want.Ticker = "SPY"
	want.Policy.DepositMarker = "Bank Transfer"
	want.Policy.Excluded = []whatif.TransCode{whatif.CodeBuy, whatif.CodeSell}
	want.Transactions.ActivityDate = "Date"
	want.Transactions.Amount = "Net Amount"
	want.PriceFormat = FormatJSON
	want.Duplicates = whatif.RejectDuplicates
	want.JSONPath = "$.data"
	want.Fields = map[string]string{"close": "Price"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ReadConfig() mismatch (-want +got):\n%s", diff)
	}

	if got := len(cfg.Options(zerolog.Nop())); got != 5 {
		t.Errorf("len(Options()) = %d, want 5", got)
	}
}

func TestReadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", "empty file"},
		{"version", "version: v2\n", "unsupported config version"},
		{"unknown key", "version: v1\nproxy:\n  symbol: VTI\n", "symbol"},
		{"format", "version: v1\nprices:\n  format: xml\n", "prices.format"},
		{"duplicates", "version: v1\nprices:\n  duplicates: merge\n", "prices.duplicates"},
		{"column", "version: v1\nprices:\n  columns:\n    close: Close\n", "prices.columns"},
		{"empty column", "version: v1\ndeposits:\n  columns:\n    amount: \"\"\n", "deposits.columns"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := ReadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ReadConfig(%q) error = %v, want %q", tc.content, err, tc.want)
			}
		})
	}

	_, err := ReadConfig(filepath.Join(t.TempDir(), DefaultFileName))
	if err == nil || !strings.Contains(err.Error(), "config-init") {
		t.Errorf("ReadConfig(missing) error = %v, want a hint to config-init", err)
	}
}
