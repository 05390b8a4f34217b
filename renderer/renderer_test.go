package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/whatif"
	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline is the structure of a markdown document.
type outline struct {
	headings []string
	tables   []int // number of body rows per table
	text     string
}

// parse parses a markdown document with the table extension.
func parse(t *testing.T, doc string) outline {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var o outline
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			var b strings.Builder
			for i := 0; i < n.Lines().Len(); i++ {
				seg := n.Lines().At(i)
				b.Write(seg.Value(src))
			}
			o.headings = append(o.headings, b.String())
		case *east.Table:
			rows := 0
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if _, ok := c.(*east.TableRow); ok {
					rows++
				}
			}
			o.tables = append(o.tables, rows)
		case *ast.Text:
			o.text += string(n.Segment.Value(src)) + " "
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return o
}

func TestFormatCash(t *testing.T) {
	tests := []struct {
		format Format
		in     string
		want   string
	}{
		{DefaultFormat, "17454.545454", "$17,454.55"},
		{DefaultFormat, "-200", "-$200.00"},
		{Format{}, "0.004", "$0.00"},
	}
	for _, tc := range tests {
		if got := tc.format.Cash(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("Format{%q}.Cash(%s) = %q, want %q", tc.format.Currency, tc.in, got, tc.want)
		}
	}
	if got := DefaultFormat.SignedCash(decimal.NewFromInt(3000)); got != "+$3,000.00" {
		t.Errorf("SignedCash(3000) = %q, want +$3,000.00", got)
	}
}

func comparison(beat bool) whatif.Comparison {
	c := whatif.Comparison{
		TotalInvested: decimal.NewFromInt(15000),
		EndValue:      decimal.NewFromInt(18000),
		ProxyEndValue: decimal.RequireFromString("17454.5454"),
		ProxyShares:   decimal.RequireFromString("145.4545"),
		Start:         date.New(2023, 1, 1),
		End:           date.New(2023, 12, 31),
		Years:         364 / whatif.DaysPerYear,

		PortfolioReturn: 20,
		ProxyReturn:     16.3636,
		Outperformance:  3.6364,
		BeatMarket:      true,
	}
	if !beat {
		c.PortfolioReturn, c.Outperformance, c.BeatMarket = 10, -6.3636, false
	}
	return c
}

func TestComparisonMarkdown(t *testing.T) {
	doc := ComparisonMarkdown(comparison(true), DefaultFormat)
	o := parse(t, doc)
	if len(o.headings) != 1 || o.headings[0] != "What if everything went into VTI?" {
		t.Errorf("headings = %q, want the title only", o.headings)
	}
	if len(o.tables) != 1 || o.tables[0] != 5 {
		t.Errorf("tables = %v, want one table of 5 rows", o.tables)
	}
	for _, want := range []string{"$17,454.55", "+20.00%", "+16.36%", "You beat VTI by +3.64%", "145.4545"} {
		if !strings.Contains(doc, want) {
			t.Errorf("ComparisonMarkdown() does not contain %q:\n%s", want, doc)
		}
	}

	doc = ComparisonMarkdown(comparison(false), Format{Ticker: "SPY"})
	if !strings.Contains(doc, "SPY beat you by +6.36%") {
		t.Errorf("ComparisonMarkdown() lost to the market:\n%s", doc)
	}
}

func timeline(t *testing.T) *whatif.Timeline {
	t.Helper()
	p := func(day string, v int64) whatif.PriceRecord {
		return whatif.PriceRecord{Date: date.MustParse(day), Price: decimal.NewFromInt(v)}
	}
	cal := whatif.NewCalendarFrom(p("2024-01-05", 100), p("2024-01-08", 110), p("2024-01-09", 120))
	d := date.New(2024, 1, 6)
	tl, err := whatif.BuildTimeline([]whatif.DepositEvent{
		{Date: date.New(2024, 1, 5), Cash: decimal.NewFromInt(1000)},
		{Date: d, Cash: decimal.NewFromInt(1100), Original: d},
	}, cal, whatif.WithToday(date.New(2024, 1, 9)))
	if err != nil {
		t.Fatalf("BuildTimeline() error = %v", err)
	}
	return tl
}

func TestTimelineMarkdown(t *testing.T) {
	tl := timeline(t)
	tests := []struct {
		purchasesOnly bool
		rows          int
	}{
		{false, 3},
		{true, 2},
	}
	for _, tc := range tests {
		doc := TimelineMarkdown(tl, tc.purchasesOnly, DefaultFormat)
		o := parse(t, doc)
		if len(o.tables) != 1 || o.tables[0] != tc.rows {
			t.Errorf("TimelineMarkdown(%v) tables = %v, want one table of %d rows", tc.purchasesOnly, o.tables, tc.rows)
		}
		want := []string{"VTI Timeline from 2024-01-05 to 2024-01-09", "Deposits on Non-Trading Days"}
		if strings.Join(o.headings, "|") != strings.Join(want, "|") {
			t.Errorf("TimelineMarkdown(%v) headings = %q, want %q", tc.purchasesOnly, o.headings, want)
		}
	}
	doc := TimelineMarkdown(tl, false, DefaultFormat)
	for _, want := range []string{"$1,100.00 deposited on 2024-01-06, invested on 2024-01-08", "$2,100.00 invested in 2 purchases, worth $2,400.00"} {
		if !strings.Contains(doc, want) {
			t.Errorf("TimelineMarkdown() does not contain %q:\n%s", want, doc)
		}
	}
}

func TestDepositsMarkdown(t *testing.T) {
	tx := func(day string, code whatif.TransCode, desc string, amount int64) whatif.Transaction {
		return whatif.Transaction{ActivityDate: date.MustParse(day), Code: code, Description: desc, Amount: decimal.NewFromInt(amount), Row: 1}
	}
	report := whatif.ExtractDeposits([]whatif.Transaction{
		tx("2023-01-01", whatif.CodeACH, "ACH Deposit", 10000),
		tx("2023-02-01", whatif.CodeACH, "ACH Cancel", -200),
		tx("2023-03-01", whatif.CodeBuy, "SPY\nCUSIP: 78462F103", -500),
		tx("2023-03-02", whatif.CodeBuy, "SPY", -500),
		tx("2023-04-01", "GOLD", "Gold\nsubscription", -5),
	})

	doc := DepositsMarkdown(report, DefaultFormat)
	o := parse(t, doc)
	want := []string{"Deposits", "Cancelled Deposits", "Excluded Transactions", "Unrecognized Transactions"}
	if strings.Join(o.headings, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", o.headings, want)
	}
	if got := []int{2, 1, 1, 1}; len(o.tables) != 4 || o.tables[0] != got[0] || o.tables[3] != got[3] {
		t.Errorf("tables = %v, want %v", o.tables, got)
	}
	for _, want := range []string{"$200.00 cancelled in 1 transaction", "Gold subscription"} {
		if !strings.Contains(doc, want) {
			t.Errorf("DepositsMarkdown() does not contain %q:\n%s", want, doc)
		}
	}

	doc = DepositsMarkdown(whatif.ExtractDeposits(nil), DefaultFormat)
	if o := parse(t, doc); len(o.headings) != 1 {
		t.Errorf("DepositsMarkdown(empty) headings = %q, want the title only", o.headings)
	}
}
