package ir

import "testing"

func TestParamIdentifier(t *testing.T) {
	tests := []struct {
		i    int
		want Identifier
	}{
		{0, "__param_0"},
		{1, "__param_1"},
		{12, "__param_12"},
	}
	for _, tt := range tests {
		if got := ParamIdentifier(tt.i); got != tt.want {
			t.Errorf("ParamIdentifier(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestIsConstructorDestructor(t *testing.T) {
	if !IsConstructor(ConstructorSentinel{}) {
		t.Errorf("ConstructorSentinel should report IsConstructor")
	}
	if IsConstructor(DestructorSentinel{}) {
		t.Errorf("DestructorSentinel should not report IsConstructor")
	}
	if !IsDestructor(DestructorSentinel{}) {
		t.Errorf("DestructorSentinel should report IsDestructor")
	}
	if IsDestructor(Identifier("Foo")) {
		t.Errorf("plain Identifier should not report IsDestructor")
	}
}

func TestSortLifetimesByName(t *testing.T) {
	ls := []Lifetime{{Name: "b"}, {Name: "a"}, {Name: "c"}, {Name: "a2"}}
	SortLifetimesByName(ls)
	want := []string{"a", "a2", "b", "c"}
	for i, l := range ls {
		if l.Name != want[i] {
			t.Errorf("SortLifetimesByName()[%d] = %q, want %q", i, l.Name, want[i])
		}
	}
}

func TestMappedTypeIsVoid(t *testing.T) {
	voidType := MappedType{Cc: CcType{Name: "void"}, Rs: RsType{}}
	if !voidType.IsVoid() {
		t.Errorf("void MappedType should report IsVoid")
	}

	intType := MappedType{Cc: CcType{Name: "int"}, Rs: RsType{Name: "i32"}}
	if intType.IsVoid() {
		t.Errorf("int MappedType should not report IsVoid")
	}
}

func TestCcTypeIsPointerOrReference(t *testing.T) {
	ptr := CcType{Name: CcPointerName, TypeParams: []CcType{{Name: "int"}}}
	if !ptr.IsPointerOrReference() {
		t.Errorf("single-param '*' CcType should be IsPointerOrReference")
	}
	notPtr := CcType{Name: "int"}
	if notPtr.IsPointerOrReference() {
		t.Errorf("plain CcType should not be IsPointerOrReference")
	}
}
