package sfv

import "fmt"

// ValidateKey checks a string against the RFC 8941 key grammar:
// ^[a-z*][a-z0-9_\-.*]*$. Parameters and Dictionary reject keys failing this
// grammar at the operation boundary (spec.md §3 invariant 5), never lazily
// at serialization. A bad key is a SyntaxError (spec.md §7), same as any
// other grammar violation.
func ValidateKey(key string) error {
	if key == "" {
		return &SyntaxError{Message: "key must be non-empty", Offset: 0}
	}
	if !isKeyStart(key[0]) {
		return &SyntaxError{
			Message: fmt.Sprintf("key %q starts with invalid byte 0x%02x", key, key[0]),
			Offset:  0,
		}
	}
	for i := 1; i < len(key); i++ {
		if !isKeyChar(key[i]) {
			return &SyntaxError{
				Message: fmt.Sprintf("key %q contains invalid byte 0x%02x at offset %d", key, key[i], i),
				Offset:  i,
			}
		}
	}
	return nil
}
