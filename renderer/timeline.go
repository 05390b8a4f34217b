package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/whatif"
	md "github.com/nao1215/markdown"
)

// TimelineMarkdown renders the proxy timeline, one row per trading day or
// only the days shares were bought.
func TimelineMarkdown(t *whatif.Timeline, purchasesOnly bool, f Format) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Timeline from %s to %s", f.Ticker, t.Start, t.End))

	points := t.Points
	if purchasesOnly {
		points = t.Purchases()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Invested", "Price", "Bought", "Shares", "Value"},
	}
	for _, p := range points {
		invested, bought := "", ""
		if p.Purchase != nil {
			invested, bought = f.Cash(p.Purchase.Cash), shares(p.Purchase.Shares)
		}
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			invested,
			f.Cash(p.Price),
			bought,
			shares(p.Shares),
			f.Cash(p.Valuation),
		})
	}
	doc.Table(table)

	if last, ok := t.Last(); ok {
		doc.PlainText(fmt.Sprintf("%s invested in %s, worth %s on %s.",
			f.Cash(t.Invested()), plural(len(t.Purchases()), "purchase"), f.Cash(last.Valuation), last.Date))
	}

	var rolled []string
	for _, d := range t.Deposits {
		if d.Date != d.Original {
			rolled = append(rolled, fmt.Sprintf("%s deposited on %s, invested on %s", f.Cash(d.Cash), d.Original, d.Date))
		}
	}
	if len(rolled) > 0 {
		doc.H2("Deposits on Non-Trading Days")
		doc.BulletList(rolled...)
	}
	return doc.String()
}
