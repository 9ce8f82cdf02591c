package typemap

// wellKnown is the authoritative table of standard-library spellings that
// bypass structural translation entirely (§4.1 step 1). It is checked
// against a type's exact unqualified spelling before any other rule, so a
// typedef chain that eventually desugars to one of these names is never
// consulted — only the spelling as written at the use site matters.
var wellKnown = map[string]string{
	"ptrdiff_t":      "isize",
	"intptr_t":       "isize",
	"std::ptrdiff_t": "isize",
	"std::intptr_t":  "isize",

	"size_t":      "usize",
	"uintptr_t":   "usize",
	"std::size_t": "usize",
	"std::uintptr_t": "usize",

	"int8_t":      "i8",
	"std::int8_t": "i8",
	"int16_t":      "i16",
	"std::int16_t": "i16",
	"int32_t":      "i32",
	"std::int32_t": "i32",
	"int64_t":      "i64",
	"std::int64_t": "i64",

	"uint8_t":      "u8",
	"std::uint8_t": "u8",
	"uint16_t":      "u16",
	"std::uint16_t": "u16",
	"uint32_t":      "u32",
	"std::uint32_t": "u32",
	"uint64_t":      "u64",
	"std::uint64_t": "u64",

	"char16_t": "u16",
	"char32_t": "u32",
	"wchar_t":  "i32",
}

// IsWellKnownSpelling reports whether spelling matches the well-known
// type table, letting callers outside this package (the type alias
// importer) skip a spelling the mapper would absorb anyway.
func IsWellKnownSpelling(spelling string) bool {
	_, ok := wellKnown[spelling]
	return ok
}
