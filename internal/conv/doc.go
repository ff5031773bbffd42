// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions of untyped JSON values.
//
// Values are the ones produced by encoding/json decoding into `any` with
// `UseNumber` enabled: maps, slices, strings, booleans, json.Number and nil.
package conv
