package whatif

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes the point with a stable field order. Purchase fields are
// only present on the days shares were bought.
func (p TimelinePoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("shares", p.Shares)
	w.Append("price", p.Price)
	w.Append("valuation", p.Valuation)
	if p.Purchase != nil {
		w.Append("cash", p.Purchase.Cash)
		w.Append("bought", p.Purchase.Shares)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON reads a point written by MarshalJSON.
func (p *TimelinePoint) UnmarshalJSON(data []byte) error {
	var j struct {
		Date      date.Date           `json:"date"`
		Shares    decimal.Decimal     `json:"shares"`
		Price     decimal.Decimal     `json:"price"`
		Valuation decimal.Decimal     `json:"valuation"`
		Cash      decimal.NullDecimal `json:"cash"`
		Bought    decimal.NullDecimal `json:"bought"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*p = TimelinePoint{Date: j.Date, Shares: j.Shares, Price: j.Price, Valuation: j.Valuation}
	if j.Cash.Valid {
		p.Purchase = &Purchase{Cash: j.Cash.Decimal, Shares: j.Bought.Decimal, Price: j.Price}
	}
	return nil
}

// MarshalJSON writes the deposit, with its export date only when it was rolled forward.
func (d DepositEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", d.Date)
	w.Append("cash", d.Cash)
	if d.Original != d.Date {
		w.Optional("original", d.Original)
	}
	return w.MarshalJSON()
}

// EncodeTimeline writes one JSON object per point, one point per line.
func EncodeTimeline(w io.Writer, points []TimelinePoint) error {
	enc := json.NewEncoder(w)
	for _, p := range points {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("could not encode point on %s: %w", p.Date, err)
		}
	}
	return nil
}

// DecodeTimeline reads points written by EncodeTimeline.
func DecodeTimeline(r io.Reader) ([]TimelinePoint, error) {
	var points []TimelinePoint
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var p TimelinePoint
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	return points, scanner.Err()
}
