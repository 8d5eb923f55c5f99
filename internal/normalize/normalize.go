// Package normalize converts free-form numeric cell text into canonical
// float values. Parsing yields a tagged value so "unparsable" is an explicit
// outcome instead of a silent pass-through.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ecomtop/topsel/internal/schema"
)

// Sentinels recognized as "no data". Matched after trimming whitespace;
// "nan" and "none" match case-insensitively.
var sentinels = map[string]bool{
	"":     true,
	"—":    true,
	"无数据":  true,
	"nan":  true,
	"none": true,
}

var (
	rangeRe     = regexp.MustCompile(`^(\d+(?:\.\d+)?)([wW万千]?)-(\d+(?:\.\d+)?)([wW万千]?)$`)
	magnitudeRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([万千wW])$`)
)

// Cell parses one cell. The first matching rule wins:
//
//  1. empty / sentinel markers      -> Null
//  2. percentage ("15%")            -> 0.15
//  3. magnitude range ("7.5w-10w")  -> mean of the endpoints, 87500
//  4. single magnitude ("1.2万")     -> 12000, "50千" -> 50000
//  5. plain number ("1,200")        -> 1200
//  6. anything else                 -> Text(original), never coerced
func Cell(raw string) schema.Value {
	s := strings.TrimSpace(raw)

	if sentinels[s] || sentinels[strings.ToLower(s)] {
		return schema.Null
	}

	if strings.Contains(s, "%") {
		cleaned := strings.ReplaceAll(strings.ReplaceAll(s, "%", ""), ",", "")
		if n, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64); err == nil {
			return schema.Num(n / 100)
		}
		return schema.Text(raw)
	}

	if m := rangeRe.FindStringSubmatch(s); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[3], 64)
		if err1 == nil && err2 == nil {
			return schema.Num((applyUnit(lo, m[2]) + applyUnit(hi, m[4])) / 2)
		}
		return schema.Text(raw)
	}

	if m := magnitudeRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return schema.Num(applyUnit(n, m[2]))
		}
		return schema.Text(raw)
	}

	if n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return schema.Num(n)
	}

	return schema.Text(raw)
}

func applyUnit(n float64, unit string) float64 {
	switch unit {
	case "万", "w", "W":
		return n * 10000
	case "千":
		return n * 1000
	default:
		return n
	}
}

// Record builds a canonical record from one raw row using the resolved
// column mapping. Numeric fields run through Cell; text fields keep their
// trimmed source text (empty becomes Null). Fields with no source column
// stay Null. It returns the record and the number of numeric cells that
// could not be parsed (kept verbatim as text).
func Record(row map[string]string, mapping map[string]schema.Field) (schema.Record, int) {
	rec := schema.NewRecord()
	unparsed := 0

	for col, field := range mapping {
		raw, ok := row[col]
		if !ok {
			continue
		}
		if field.Numeric() {
			v := Cell(raw)
			if v.Kind() == schema.KindText {
				unparsed++
			}
			rec[field] = v
			continue
		}
		if t := strings.TrimSpace(raw); t != "" {
			rec[field] = schema.Text(t)
		}
	}

	return rec, unparsed
}
