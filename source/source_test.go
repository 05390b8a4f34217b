package source

import (
	"strings"
	"testing"

	"github.com/etnz/whatif"
	"github.com/stretchr/testify/require"
)

func TestReadCSVFile(t *testing.T) {
	t.Parallel()
	rows, err := ReadCSVFile("testdata/activity.csv")
	require.NoError(t, err)
	// The disclaimer after the blank line is not data.
	require.Len(t, rows, 3)
	require.Equal(t, "6/1/2023", rows[0]["Activity Date"], "byte order mark must be stripped")
	require.Equal(t, "$5,000.00", rows[0]["Amount"])
	require.Equal(t, "SPDR S&P 500\nCUSIP: 78462F103", rows[1]["Description"])
	require.Equal(t, "($3,955.00)", rows[1]["Amount"])

	txs, err := whatif.ParseTransactions(rows)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	report := whatif.ExtractDeposits(txs)
	require.Equal(t, "15000", report.TotalInvested.String())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()
	rows, err := ReadCSV(strings.NewReader(" Date , Price\n01/03/2023,190.50\n"))
	require.NoError(t, err)
	require.Equal(t, []whatif.Row{{"Date": "01/03/2023", "Price": "190.50"}}, rows)

	rows, err = ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rows)

	_, err = ReadCSVFile("testdata/missing.csv")
	require.Error(t, err)
}

func TestReadJSONFile(t *testing.T) {
	t.Parallel()
	rows, err := ReadJSONFile("testdata/prices.json", "$.data", map[string]string{"date": "Date", "close": "Price", "open": "Open"})
	require.NoError(t, err)
	require.Equal(t, []whatif.Row{
		{"Date": "2023-01-03", "Price": "190.5", "Open": "189", "volume": "3.1M"},
		{"Date": "2023-01-04", "Price": "191.25", "Open": "190.5", "volume": ""},
	}, rows)

	cal, err := whatif.ParsePrices(rows)
	require.NoError(t, err)
	require.Equal(t, 2, cal.Len())
}

func TestReadJSONErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name, doc, path string
	}{
		{"invalid", `{`, "$"},
		{"not an array", `{"data": 1}`, "$.data"},
		{"not objects", `[1, 2]`, ""},
		{"bad path", `{"data": []}`, "$.["},
	} {
		_, err := ReadJSON(strings.NewReader(tc.doc), tc.path, nil)
		require.Error(t, err, tc.name)
	}
}
