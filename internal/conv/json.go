package conv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Decode parses a single JSON document. Numbers are kept as json.Number in
// canonical text: integers as digits, floats in shortest form.
func Decode(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	var extra any
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected trailing data at offset %d", decoder.InputOffset())
		}
		return nil, err
	}
	return normalize(value), nil
}

// normalize returns value with every json.Number rewritten to its canonical
// text. Maps and slices are copied; value itself is never modified.
func normalize(value any) any {
	switch actual := value.(type) {
	case json.Number:
		return json.Number(numberText(actual))
	case map[string]any:
		ret := make(map[string]any, len(actual))
		for key, item := range actual {
			ret[key] = normalize(item)
		}
		return ret
	case []any:
		ret := make([]any, len(actual))
		for i, item := range actual {
			ret[i] = normalize(item)
		}
		return ret
	}
	return value
}

// Marshal encodes value as compact JSON without HTML escaping.
func Marshal(value any) ([]byte, error) {
	return encode(value, "")
}

// Pretty encodes value as two-space indented JSON without HTML escaping.
func Pretty(value any) string {
	data, err := encode(value, "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// Compact encodes value as compact JSON, returning an empty string on failure.
func Compact(value any) string {
	data, err := encode(value, "")
	if err != nil {
		return ""
	}
	return string(data)
}

// AsText returns the canonical textual form of a JSON value: strings verbatim,
// numbers in decimal form, booleans as true/false, anything else as compact JSON.
func AsText(value any) string {
	switch actual := value.(type) {
	case string:
		return actual
	case bool:
		return strconv.FormatBool(actual)
	case json.Number:
		return numberText(actual)
	case float64:
		return floatText(actual)
	case int:
		return strconv.Itoa(actual)
	case int64:
		return strconv.FormatInt(actual, 10)
	default:
		return Compact(value)
	}
}

// numberText renders integers as plain digits and everything else in the
// shortest decimal form, keeping ".0" on integral floats (e.g. 2.0, 1e3).
func numberText(number json.Number) string {
	text := number.String()
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return strconv.FormatUint(u, 10)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	return floatText(f)
}

func floatText(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}
	scientific := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(scientific, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(exponent)
	point := exp + 1 // digits before the decimal point
	switch {
	case point >= len(digits) && point <= 16:
		return sign + digits + strings.Repeat("0", point-len(digits)) + ".0"
	case point > 0 && point <= 16:
		return sign + digits[:point] + "." + digits[point:]
	case point > -5 && point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + digits
	case len(digits) == 1:
		return sign + digits + "e" + strconv.Itoa(exp)
	}
	return sign + digits[:1] + "." + digits[1:] + "e" + strconv.Itoa(exp)
}

func encode(value any, indent string) ([]byte, error) {
	value = normalize(value)
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}
