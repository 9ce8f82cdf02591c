// Package ccfixture builds a cc.TranslationUnit from a small declarative
// JSON document instead of parsing C++ source text (§6): functions,
// records, typedefs, comments, and lifetimes, each plain data. It is the
// seam where a real Clang-backed front end would be substituted; parsing
// actual header text is this repository's explicit Non-goal.
package ccfixture

import "cclower/internal/ir"

// loc is the JSON shape of a source.Loc.
type loc struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// typ is the JSON shape of a cc.Type. Kind selects which of the remaining
// fields apply: "builtin", "pointer", "reference", "tag", or "typedef".
type typ struct {
	Kind     string `json:"kind"`
	Spelling string `json:"spelling"`
	Const    bool   `json:"const"`

	// kind == "builtin"
	Builtin string `json:"builtin,omitempty"`
	Width   int    `json:"width,omitempty"`
	Signed  bool   `json:"signed,omitempty"`

	// kind == "pointer" or "reference"
	Pointee *typ `json:"pointee,omitempty"`

	// kind == "tag" or "typedef"
	Decl ir.DeclID `json:"decl,omitempty"`
}

type param struct {
	Name string `json:"name"`
	Type typ    `json:"type"`
}

type lifetimes struct {
	This   []string   `json:"this,omitempty"`
	Return []string   `json:"return,omitempty"`
	Params [][]string `json:"params,omitempty"`
}

type function struct {
	ID            ir.DeclID `json:"id"`
	QualifiedName string    `json:"qualified_name"`
	Name          string    `json:"name"`
	Loc           loc       `json:"loc"`
	ExtentEnd     *loc      `json:"extent_end,omitempty"`
	Parent        string    `json:"parent"`
	DocComment    *string   `json:"doc_comment,omitempty"`
	DocCommentLoc *loc      `json:"doc_comment_loc,omitempty"`

	IsConstructor        bool   `json:"is_constructor"`
	IsDestructor         bool   `json:"is_destructor"`
	IsDeleted            bool   `json:"is_deleted"`
	IsDefaultConstructor bool   `json:"is_default_constructor"`
	IsCopyConstructor    bool   `json:"is_copy_constructor"`
	IsMoveConstructor    bool   `json:"is_move_constructor"`
	IsInline             bool   `json:"is_inline"`
	IsStatic             bool   `json:"is_static"`
	Access               string `json:"access,omitempty"`
	OwningRecord         *ir.DeclID `json:"owning_record,omitempty"`
	IsConstQualified     bool   `json:"is_const_qualified"`
	IsVirtual            bool   `json:"is_virtual"`

	ReturnType typ        `json:"return_type"`
	Params     []param    `json:"params,omitempty"`
	Lifetimes  *lifetimes `json:"lifetimes,omitempty"`

	IsUserProvided bool `json:"is_user_provided"`
	IsImplicit     bool `json:"is_implicit"`
	IsTrivial      bool `json:"is_trivial"`
}

type field struct {
	Name       string  `json:"name"`
	Type       typ     `json:"type"`
	Access     string  `json:"access,omitempty"`
	HasAccess  bool    `json:"has_access"`
	DocComment *string `json:"doc_comment,omitempty"`
	Loc        loc     `json:"loc"`
}

type layout struct {
	SizeBytes    int   `json:"size_bytes"`
	AlignBytes   int   `json:"align_bytes"`
	FieldOffsets []int `json:"field_offsets,omitempty"`
}

type record struct {
	ID            ir.DeclID `json:"id"`
	QualifiedName string    `json:"qualified_name"`
	Loc           loc       `json:"loc"`
	ExtentEnd     *loc      `json:"extent_end,omitempty"`
	Parent        string    `json:"parent"`
	DocComment    *string   `json:"doc_comment,omitempty"`
	DocCommentLoc *loc      `json:"doc_comment_loc,omitempty"`

	Name                     string `json:"name"`
	Kind                     string `json:"kind"`
	IsTemplate               bool   `json:"is_template"`
	IsTemplateSpecialization bool   `json:"is_template_specialization"`
	IsComplete               bool   `json:"is_complete"`
	IsFinal                  bool   `json:"is_final"`
	IsTrivialAbi             bool   `json:"is_trivial_abi"`

	Fields []field `json:"fields,omitempty"`
	Layout layout  `json:"layout"`

	CopyCtor *ir.DeclID `json:"copy_ctor,omitempty"`
	MoveCtor *ir.DeclID `json:"move_ctor,omitempty"`
	Dtor     *ir.DeclID `json:"dtor,omitempty"`
}

type typedef struct {
	ID            ir.DeclID `json:"id"`
	QualifiedName string    `json:"qualified_name"`
	Loc           loc       `json:"loc"`
	ExtentEnd     *loc      `json:"extent_end,omitempty"`
	Parent        string    `json:"parent"`
	DocComment    *string   `json:"doc_comment,omitempty"`
	DocCommentLoc *loc      `json:"doc_comment_loc,omitempty"`

	Name           string `json:"name"`
	UnderlyingType typ    `json:"underlying_type"`
}

type declRef struct {
	Kind string    `json:"kind"` // "function", "record", or "typedef"
	ID   ir.DeclID `json:"id"`
}

type comment struct {
	Loc  loc    `json:"loc"`
	Text string `json:"text"`
}

// document is the root JSON shape of a fixture file.
type document struct {
	SystemHeaders []string            `json:"system_headers,omitempty"`
	IncludeChains map[string][]string `json:"include_chains,omitempty"`
	BuiltinFiles  []string            `json:"builtin_files,omitempty"`

	Functions []function `json:"functions,omitempty"`
	Records   []record   `json:"records,omitempty"`
	Typedefs  []typedef  `json:"typedefs,omitempty"`
	Decls     []declRef  `json:"decls"`
	Comments  []comment  `json:"comments,omitempty"`
}
