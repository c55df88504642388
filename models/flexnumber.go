package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexNumber is a numeric field that historically arrived from form input
// either as a number or as a string like "25%" or "24,000". The raw form is
// kept for auditing; Value is the normalized numeric used everywhere else.
// Unparsable input normalizes to 0, never to an error.
type FlexNumber struct {
	Raw     string
	Value   float64
	Numeric bool
}

// FlexFromFloat wraps an already-numeric value.
func FlexFromFloat(v float64) FlexNumber {
	return FlexNumber{Value: v, Numeric: true}
}

// FlexFromString normalizes a form string: percent suffix and thousands
// separators are stripped before parsing. Parse failure yields Value 0.
func FlexFromString(s string) FlexNumber {
	f := FlexNumber{Raw: s}
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		f.Value = v
	}
	return f
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFromFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexFromString(s)
		return nil
	}
	// null or unexpected shape degrades to zero
	*f = FlexNumber{}
	return nil
}

func (f FlexNumber) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(f.Value)
}

func (f *FlexNumber) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	if v, ok := rv.DoubleOK(); ok {
		*f = FlexFromFloat(v)
		return nil
	}
	if v, ok := rv.Int32OK(); ok {
		*f = FlexFromFloat(float64(v))
		return nil
	}
	if v, ok := rv.Int64OK(); ok {
		*f = FlexFromFloat(float64(v))
		return nil
	}
	if s, ok := rv.StringValueOK(); ok {
		*f = FlexFromString(s)
		return nil
	}
	*f = FlexNumber{}
	return nil
}
