package schema

// Record is one listing re-keyed to the canonical schema. Every canonical
// field is always present; fields with no source column hold Null.
type Record map[Field]Value

// NewRecord returns a record with all canonical fields set to Null.
func NewRecord() Record {
	r := make(Record, len(Fields))
	for _, f := range Fields {
		r[f] = Null
	}
	return r
}

// Float returns the field's numeric payload and whether it is a number.
func (r Record) Float(f Field) (float64, bool) {
	return r[f].Float()
}

// FloatOr returns the field's numeric payload, or def when it is null or
// unparsed text.
func (r Record) FloatOr(f Field, def float64) float64 {
	return r[f].FloatOr(def)
}

// Text returns the field rendered as output text.
func (r Record) Text(f Field) string {
	return r[f].String()
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for f, v := range r {
		out[f] = v
	}
	return out
}

// Column extracts one field from every record, preserving row order.
func Column(records []Record, f Field) []Value {
	col := make([]Value, len(records))
	for i, r := range records {
		col[i] = r[f]
	}
	return col
}
