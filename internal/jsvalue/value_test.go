package jsvalue

import "testing"

func TestObjectSetPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", Num(2))
	o.Set("a", Num(1))
	o.Set("b", Num(3)) // re-setting an existing key doesn't move it
	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("got keys %v, want [b a]", keys)
	}
	v, ok := o.Get("b")
	if !ok || v.Num.Value != 3 {
		t.Fatalf("got %+v, ok=%v, want 3, true", v, ok)
	}
}

func TestObjectGetMissingKey(t *testing.T) {
	o := NewObject()
	_, ok := o.Get("missing")
	if ok {
		t.Fatal("expected ok=false for a missing key")
	}
}

func TestObjectIdentityAliasing(t *testing.T) {
	o := NewObject()
	o.Set("x", Num(1))
	a := Obj(o)
	b := Obj(o)
	if a.Object != b.Object {
		t.Fatal("two Values wrapping the same *ObjectData must share the pointer")
	}
	a.Object.Set("x", Num(2))
	v, _ := b.Object.Get("x")
	if v.Num.Value != 2 {
		t.Fatal("mutation through a should be observable through b")
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Undefined, "undefined"},
		{Null, "null"},
		{Bool(true), "boolean"},
		{Num(1), "number"},
		{Str("x"), "string"},
		{Obj(NewObject()), "object"},
		{Fn(&Closure{}), "closure"},
	}
	for _, c := range cases {
		if got := c.v.TypeName(); got != c.want {
			t.Fatalf("TypeName() = %q, want %q", got, c.want)
		}
	}
}
