package diagnostics

// Diagnostic codes emitted by the lowering engine.
const (
	// Importer-side skips (§4.3, §7): a declaration or sub-part could not
	// be translated.
	ErrUnsupportedDecl  = "U0001"
	ErrUnsupportedType  = "U0002"
	ErrUnsupportedField = "U0003"

	// Manifest/configuration errors (§4.8).
	ErrConfigDecode        = "C0001"
	ErrConfigMissingTarget = "C0002"
)
