package whatif

import "strings"

// Row is a raw record of string-keyed fields, as produced by a CSV or JSON reader.
type Row map[string]string

// get returns the trimmed value of field 'name'.
func (r Row) get(name string) string { return strings.TrimSpace(r[name]) }

// TransactionColumns names the fields of a transaction export.
type TransactionColumns struct {
	ActivityDate string
	ProcessDate  string
	SettleDate   string
	Instrument   string
	Description  string
	Code         string
	Quantity     string
	Price        string
	Amount       string
}

// DefaultTransactionColumns returns the column names of a Robinhood account activity export.
func DefaultTransactionColumns() TransactionColumns {
	return TransactionColumns{
		ActivityDate: "Activity Date",
		ProcessDate:  "Process Date",
		SettleDate:   "Settle Date",
		Instrument:   "Instrument",
		Description:  "Description",
		Code:         "Trans Code",
		Quantity:     "Quantity",
		Price:        "Price",
		Amount:       "Amount",
	}
}

// PriceColumns names the fields of a price history export.
type PriceColumns struct {
	Date          string
	Price         string
	Open          string
	High          string
	Low           string
	Volume        string
	ChangePercent string
}

// DefaultPriceColumns returns the column names of an Investing.com historical data export.
func DefaultPriceColumns() PriceColumns {
	return PriceColumns{
		Date:          "Date",
		Price:         "Price",
		Open:          "Open",
		High:          "High",
		Low:           "Low",
		Volume:        "Vol.",
		ChangePercent: "Change %",
	}
}
