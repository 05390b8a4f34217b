package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/whatif"
	md "github.com/nao1215/markdown"
)

// DepositsMarkdown renders what the deposit extraction kept and left out.
func DepositsMarkdown(r whatif.DepositReport, f Format) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Deposits")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Amount"},
	}
	for _, d := range r.Deposits {
		table.Rows = append(table.Rows, []string{d.Date.String(), f.Cash(d.Cash)})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total Invested"), md.Bold(f.Cash(r.TotalInvested))})
	doc.Table(table)

	if len(r.Cancelled) > 0 {
		doc.H2("Cancelled Deposits")
		doc.PlainText(fmt.Sprintf("%s cancelled in %s. They are not deducted from the total invested.",
			f.Cash(r.CancelledTotal()), plural(len(r.Cancelled), "transaction")))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Amount"},
		}
		for _, tx := range r.Cancelled {
			table.Rows = append(table.Rows, []string{tx.ActivityDate.String(), f.Cash(tx.Amount)})
		}
		doc.Table(table)
	}

	if len(r.Excluded) > 0 {
		doc.H2("Excluded Transactions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Code", "Count"},
		}
		for _, code := range slices.Sorted(maps.Keys(r.Excluded)) {
			table.Rows = append(table.Rows, []string{string(code), strconv.Itoa(r.Excluded[code])})
		}
		doc.Table(table)
	}

	if len(r.Unrecognized) > 0 {
		doc.H2("Unrecognized Transactions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Row", "Date", "Code", "Description", "Amount"},
		}
		for _, tx := range r.Unrecognized {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(tx.Row),
				tx.ActivityDate.String(),
				string(tx.Code),
				strings.Join(strings.Fields(tx.Description), " "),
				f.Cash(tx.Amount),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
