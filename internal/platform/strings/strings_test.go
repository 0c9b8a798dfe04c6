package strings

import "testing"

func TestClean(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  Noise - Residential  ": "Noise - Residential",
		"\tBRONX\n":               "BRONX",
		"QUEENS":                  "QUEENS",
		"   ":                     "",
		"":                        "",
	}
	for in, want := range cases {
		if got := Clean(in); got != want {
			t.Errorf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{"  x  ", false},
	}
	for _, c := range cases {
		if got := IsBlank(c.in); got != c.want {
			t.Errorf("IsBlank(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEmptyToNil(t *testing.T) {
	t.Parallel()

	if got := EmptyToNil("  "); got != "" {
		t.Fatalf("EmptyToNil whitespace = %q", got)
	}
	// non-blank strings keep their original spacing
	if got := EmptyToNil(" a "); got != " a " {
		t.Fatalf("EmptyToNil non-blank = %q", got)
	}
}

func TestPtrAndDeref(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatal("Ptr(\"\") should be nil")
	}
	p := Ptr("out.csv")
	if p == nil || *p != "out.csv" {
		t.Fatalf("Ptr = %v", p)
	}
	if got := Deref(p); got != "out.csv" {
		t.Fatalf("Deref = %q", got)
	}
	if got := Deref(nil); got != "" {
		t.Fatalf("Deref(nil) = %q", got)
	}
}
