package usecase

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// amountKeys are the money fields of orders, payments and products. Older records
// may hold them as fractional numbers or numeric strings.
var amountKeys = map[string]bool{
	"amount":       true,
	"machinePrice": true,
	"prepayment":   true,
	"price":        true,
}

// normalizeAmounts rewrites every amount field in payload to a whole number,
// rounding half away from zero. Empty strings become null.
func normalizeAmounts(payload []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if !walkAmounts(doc) {
		return payload, nil
	}
	return json.Marshal(doc)
}

func walkAmounts(v any) bool {
	changed := false
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if walkAmounts(item) {
				changed = true
			}
		}
	case map[string]any:
		for key, value := range node {
			if amountKeys[key] {
				if fixed, ok := wholeAmount(value); ok {
					node[key] = fixed
					changed = true
				}
				continue
			}
			if walkAmounts(value) {
				changed = true
			}
		}
	}
	return changed
}

// wholeAmount reports the integral replacement for v, or false when v is already
// an integer, null, or not a number at all.
func wholeAmount(v any) (any, bool) {
	var text string
	switch n := v.(type) {
	case json.Number:
		if _, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return nil, false
		}
		text = string(n)
	case string:
		text = strings.TrimSpace(n)
		if text == "" {
			return nil, true
		}
	default:
		return nil, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return json.Number(strconv.FormatInt(int64(math.Round(f)), 10)), true
}
