package typemap

import "fmt"

// UnsupportedTypePayloadURL keys the structured payload an
// UnsupportedTypeError carries, mirroring how the parser-facing error
// taxonomy (§7) lets upstream code recover the offending spelling without
// parsing the error string.
const UnsupportedTypePayloadURL = "cclower.dev/errors/unsupported-type"

// UnsupportedTypeError is returned when a C++ type cannot be translated.
// It carries the exact spelling so the declaration importer can build an
// UnsupportedItem without re-deriving it from the error string.
type UnsupportedTypeError struct {
	Spelling string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Unsupported type '%s'", e.Spelling)
}

// PayloadURL satisfies the informal "structured error payload" contract
// described in §7: callers that only have an error value can still key off
// a stable URL rather than matching on message text.
func (e *UnsupportedTypeError) PayloadURL() string { return UnsupportedTypePayloadURL }
