package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/whatif"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders the comparison of the actual portfolio with the proxy.
func ComparisonMarkdown(c whatif.Comparison, f Format) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("What if everything went into %s?", f.Ticker))
	doc.PlainText(fmt.Sprintf("From %s to %s (%.2f years).", c.Start, c.End, c.Years))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", md.Bold("Your Portfolio"), md.Bold(f.Ticker)},
		Rows: [][]string{
			{"Invested", f.Cash(c.TotalInvested), f.Cash(c.TotalInvested)},
			{fmt.Sprintf("Value on %s", c.End), f.Cash(c.EndValue), f.Cash(c.ProxyEndValue)},
			{"Gain / Loss", f.SignedCash(c.EndValue.Sub(c.TotalInvested)), f.SignedCash(c.ProxyEndValue.Sub(c.TotalInvested))},
			{"Return", c.PortfolioReturn.SignedString(), c.ProxyReturn.SignedString()},
			{"Annualized Return", c.AnnualizedPortfolioReturn.SignedString(), c.AnnualizedProxyReturn.SignedString()},
		},
	})

	if c.BeatMarket {
		doc.PlainText(fmt.Sprintf("%s You beat %s by %s.", md.Bold("Verdict:"), f.Ticker, c.Outperformance.SignedString()))
	} else {
		doc.PlainText(fmt.Sprintf("%s %s beat you by %s.", md.Bold("Verdict:"), f.Ticker, (-c.Outperformance).SignedString()))
	}
	doc.PlainText(fmt.Sprintf("The proxy holds %s shares.", shares(c.ProxyShares)))
	return doc.String()
}
