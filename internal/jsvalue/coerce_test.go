package jsvalue

import "testing"

func TestToNumber(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want float64
		nan  bool
	}{
		{"number", Num(3.5), 3.5, false},
		{"true", Bool(true), 1, false},
		{"false", Bool(false), 0, false},
		{"null", Null, 0, false},
		{"empty string", Str(""), 0, false},
		{"blank string", Str("   "), 0, false},
		{"numeric string", Str("12.5"), 12.5, false},
		{"non-numeric string", Str("abc"), 0, true},
		{"undefined", Undefined, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.v.ToNumber()
			if got.NaN != c.nan {
				t.Fatalf("NaN = %v, want %v", got.NaN, c.nan)
			}
			if !c.nan && got.Value != c.want {
				t.Fatalf("Value = %v, want %v", got.Value, c.want)
			}
		})
	}
}

func TestToBoolean(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"zero", Num(0), false},
		{"nonzero", Num(1), true},
		{"NaN", NaN(), false},
		{"empty string", Str(""), false},
		{"nonempty string", Str("x"), true},
		{"null", Null, false},
		{"undefined", Undefined, false},
		{"object", Obj(NewObject()), true},
		{"closure", Fn(&Closure{}), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.ToBoolean(); got != c.want {
				t.Fatalf("ToBoolean() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNumArithmeticNaNIsTagged(t *testing.T) {
	// 0/0 produces a float64 NaN bit pattern directly, never routing through
	// an operand ToNumber already flagged NaN, so Num must re-detect it.
	v := Num(0.0 / nonConstZero())
	if !v.Num.NaN {
		t.Fatal("Num(0/0) did not set the NaN tag")
	}
	if v.ToBoolean() {
		t.Fatal("a NaN number must be falsy")
	}
}

// nonConstZero defeats the Go compiler's constant-division-by-zero error,
// forcing 0.0/0.0 to happen at runtime the way an evaluated `0 / 0` would.
func nonConstZero() float64 { return 0 }

func TestToStringScalars(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Str("hi"), "hi"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Null, "null"},
		{Undefined, "undefined"},
		{Num(1.5), "1.5"},
		{NaN(), "NaN"},
		{Fn(&Closure{}), "[Function]"},
	}
	for _, c := range cases {
		if got := c.v.ToString(); got != c.want {
			t.Fatalf("ToString() = %q, want %q", got, c.want)
		}
	}
}

func TestObjectToStringFormat(t *testing.T) {
	o := NewObject()
	o.Set("a", Num(1))
	o.Set("b", Str("x"))
	v := Obj(o)
	want := `{a:1,b:x}`
	if got := v.ToString(); got != want {
		t.Fatalf("ToString() = %q, want %q", got, want)
	}
}
