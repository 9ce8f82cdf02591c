// Package config loads the TOML manifest that hands the lowering engine
// its headers_to_targets / public_header_names / current_target
// configuration (§4.8, §6), the way a build-system driver would in
// production rather than requiring the caller to construct Go structs
// by hand.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"cclower/internal/cc"
	"cclower/internal/ir"
)

// PublicHeader is one entry of the [[public_header_names]] array.
type PublicHeader struct {
	Name string `toml:"name"`
}

// Configuration is the decoded shape of a manifest TOML document.
type Configuration struct {
	CurrentTarget     ir.Label          `toml:"current_target"`
	PublicHeaderNames []PublicHeader    `toml:"public_header_names"`
	HeadersToTargets  map[string]string `toml:"headers_to_targets"`
}

// VirtualClangResourceDirTarget and BuiltinTarget are the two synthetic
// owning targets ResolveOwningTarget falls back to when a header has no
// entry in headers_to_targets.
const (
	VirtualClangResourceDirTarget ir.Label = "//:virtual_clang_resource_dir_target"
	BuiltinTarget                 ir.Label = "//:builtin"
)

// Load decodes a manifest from raw TOML bytes.
func Load(data []byte) (*Configuration, error) {
	var cfg Configuration
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return &cfg, nil
}

// UsedHeaders projects PublicHeaderNames into the ir.HeaderName list an
// IR's used_headers field carries, preserving manifest order.
func (c *Configuration) UsedHeaders() []ir.HeaderName {
	out := make([]ir.HeaderName, len(c.PublicHeaderNames))
	for i, h := range c.PublicHeaderNames {
		out[i] = ir.HeaderName(h.Name)
	}
	return out
}

// ResolveOwningTarget walks decl's #include chain outward until it finds
// a header present in headers_to_targets (§6, §4.8). An unmapped system
// header resolves to VirtualClangResourceDirTarget; an unmapped
// non-system header with no non-builtin filename resolves to
// BuiltinTarget.
func (c *Configuration) ResolveOwningTarget(sm cc.SourceManager, decl cc.Decl) ir.Label {
	chain := sm.IncludeChain(decl.Loc().Filename)
	for _, header := range chain {
		if target, ok := c.HeadersToTargets[string(header)]; ok {
			return ir.Label(target)
		}
	}

	if sm.IsInSystemHeader(decl.Loc().Filename) {
		return VirtualClangResourceDirTarget
	}
	// An unmapped non-system header falls back to BuiltinTarget whether or
	// not it has a non-builtin filename; the spec only defines the
	// no-non-builtin-name case explicitly (open question, resolved
	// conservatively the same way here).
	return BuiltinTarget
}
