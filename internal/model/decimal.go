package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Decimal decodes a JSON number or a numeric string. Clients of the original
// API send both forms, so decoding never fails outright: an unparseable value
// is recorded as invalid and rejected later by the business-rule validation,
// which owns the error message.
type Decimal struct {
	Value float64
	Set   bool // field was present in the request body
	Valid bool // field parsed as a number
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	d.Set = true
	d.Valid = false

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		d.Value = f
		d.Valid = true
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		// null, bool, object... all count as "not a number"
		return nil
	}
	d.Value = f
	d.Valid = true
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}
