// Package whatif answers a single question: what would my portfolio be
// worth had I put every cash deposit into one index fund instead?
//
// The engine works on data already read from files, one Row per line:
//   - Row Normalizer: ParseTransactions and ParsePrices turn raw rows of an
//     account activity export and of a proxy price history into typed
//     Transaction and PriceRecord values.
//   - Price Calendar: a Calendar holds one price per trading day and answers
//     exact date lookups only. There is no interpolation.
//   - Deposit Extractor: ExtractDeposits keeps the genuine cash deposits of
//     the log and reports cancelled and unrecognized transactions.
//   - Timeline Builder: BuildTimeline invests each deposit at the price of its
//     day, or of the next trading day, and values the proxy position every
//     trading day until today.
//   - Comparison Calculator: Compare computes simple and annualized returns
//     of both the actual portfolio and the proxy.
//
// Analyze chains all of them. Every computation on cash, prices and shares
// is done in decimal arithmetic.
//
// This package serves as the foundational logic for the `wif` command-line
// tool.
package whatif
