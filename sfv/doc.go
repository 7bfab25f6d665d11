// Package sfv implements HTTP Structured Field Values as defined by RFC 8941,
// with support for the Date and Display String extensions from RFC 9651.
//
// A structured field is one of three top-level shapes: an Item, a List, or a
// Dictionary. Each is built from a small, closed set of bare value types
// (integers, decimals, strings, tokens, byte sequences, booleans, dates, and
// display strings), optionally carrying an ordered set of Parameters.
//
// Parsing is strict and single-pass: ParseItem, ParseList, and ParseDictionary
// either return a fully-formed value or a *SyntaxError pinpointing the byte
// offset of the first violation. There is no tolerant or partial parsing.
//
// All values are immutable once constructed. Mutating methods such as
// Dictionary.Add or List.Insert return a new instance and leave the receiver
// untouched; when the result would serialize identically to the receiver, the
// receiver itself is returned unchanged.
//
//	item, err := sfv.ParseItem([]byte(`"hello";foo=1`))
//	dict, err := sfv.ParseDictionary([]byte(`a=1, b=2;x=?0, c`))
//	list, err := sfv.ParseList([]byte(`sugar, tea, rum`))
//
// Every parsed value round-trips through ToHTTPValue to its unique canonical
// textual form.
package sfv
