// Package dxf is the support library for reading DXF drawing interchange
// files as a flat stream of code pairs.
//
// This package defines three layers:
//   - CodePair/Value, the typed tagged record, with field assertions
//     (Int16, Int32, Float64, Str, Bool) that fail with MalformedValueError.
//   - Reader, a tokenizer over ASCII DXF text that yields code pairs.
//   - PutBack, a one-slot lookahead wrapper around any Source, plus the
//     Need/Expect/Optional helpers entity decoders are written against.
//
// Entity decoders built on it live in sibling packages, e.g.
//
//	dec := hatch.NewDecoder(dxf.NewReaderBytes(b), hatch.Options{})
package dxf

// Structural codes shared by every entity decoder.
const (
	CodeEntityType = 0   // start of entity, section or table record
	CodeName       = 2   // section, block or pattern name
	CodeVariable   = 9   // header variable name
	CodeHandle     = 5   // entity handle
	CodeComment    = 999 // comment line
	CodeXDataStart = 1000
)

// KindOf returns the value kind the DXF code table assigns to code.
// Codes outside every published range are read as strings.
func KindOf(code int) Kind {
	switch {
	case code < 0:
		return StringKind
	case code <= 9:
		return StringKind
	case code <= 59:
		return Float64Kind
	case code <= 79:
		return Int16Kind
	case code <= 99:
		return Int32Kind
	case code <= 109:
		return StringKind
	case code <= 149:
		return Float64Kind
	case code >= 160 && code <= 169:
		return Int64Kind
	case code >= 170 && code <= 179:
		return Int16Kind
	case code >= 210 && code <= 239:
		return Float64Kind
	case code >= 270 && code <= 289:
		return Int16Kind
	case code >= 290 && code <= 299:
		return BoolKind
	case code >= 300 && code <= 369:
		return StringKind
	case code >= 370 && code <= 389:
		return Int16Kind
	case code >= 390 && code <= 399:
		return StringKind
	case code >= 400 && code <= 409:
		return Int16Kind
	case code >= 410 && code <= 419:
		return StringKind
	case code >= 420 && code <= 429:
		return Int32Kind
	case code >= 430 && code <= 439:
		return StringKind
	case code >= 440 && code <= 459:
		return Int32Kind
	case code >= 460 && code <= 469:
		return Float64Kind
	case code >= 470 && code <= 481:
		return StringKind
	case code == 999:
		return StringKind
	case code >= 1000 && code <= 1009:
		return StringKind
	case code >= 1010 && code <= 1059:
		return Float64Kind
	case code >= 1060 && code <= 1070:
		return Int16Kind
	case code == 1071:
		return Int32Kind
	}
	return StringKind
}
