package whatif

import (
	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
)

// TransCode is the broker transaction code, e.g. "ACH" or "Buy".
type TransCode string

// Transaction codes known to the deposit policy.
const (
	CodeACH    TransCode = "ACH"    // cash transfer from or to a bank account
	CodeBuy    TransCode = "Buy"    // stock buy
	CodeSell   TransCode = "Sell"   // stock sell
	CodeBTO    TransCode = "BTO"    // buy to open (option)
	CodeSTC    TransCode = "STC"    // sell to close (option)
	CodeSTO    TransCode = "STO"    // sell to open (option)
	CodeBTC    TransCode = "BTC"    // buy to close (option)
	CodeINT    TransCode = "INT"    // interest
	CodeCDIV   TransCode = "CDIV"   // cash dividend
	CodeREC    TransCode = "REC"    // receipt
	CodeAFEE   TransCode = "AFEE"   // account fee
	CodeDFEE   TransCode = "DFEE"   // dividend fee
	CodeBCXL   TransCode = "BCXL"   // buy cancel
	CodeSCXL   TransCode = "SCXL"   // sell cancel
	CodeSOFF   TransCode = "SOFF"   // settlement offset
	CodeSPL    TransCode = "SPL"    // stock split
	CodeSPR    TransCode = "SPR"    // stock split reversal
	CodeSXCH   TransCode = "SXCH"   // stock exchange
	CodeTA     TransCode = "T/A"    // transfer or adjustment
	CodeMRGC   TransCode = "MRGC"   // margin call
	CodeMRGS   TransCode = "MRGS"   // margin sell
	CodeOCA    TransCode = "OCA"    // option assignment
	CodeOEXP   TransCode = "OEXP"   // option expiration
	CodeSLIP   TransCode = "SLIP"   // price improvement
	CodeFUTSWP TransCode = "FUTSWP" // future swap
	CodeDTAX   TransCode = "DTAX"   // dividend tax
)

// Transaction is a normalized row of the investor's transaction export.
type Transaction struct {
	ActivityDate date.Date
	ProcessDate  date.Date // zero if absent
	SettleDate   date.Date // zero if absent
	Instrument   string
	Description  string
	Code         TransCode
	Quantity     decimal.NullDecimal
	Price        decimal.NullDecimal
	Amount       decimal.Decimal // signed, negative is a cash outflow
	Row          int             // 1-based data row in the export
}
