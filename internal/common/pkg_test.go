package common

import "testing"

func TestDottedBase(t *testing.T) {
	cases := []struct{ name, want string }{
		{"bge.types.KX_GameObject", "KX_GameObject"},
		{"mylib.util", "util"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, c := range cases {
		if got := DottedBase(c.name); got != c.want {
			t.Errorf("DottedBase(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDottedPrefix(t *testing.T) {
	cases := []struct{ name, want string }{
		{"bge.types.KX_GameObject", "bge.types"},
		{"mylib.util", "mylib"},
		{"plain", ""},
	}

	for _, c := range cases {
		if got := DottedPrefix(c.name); got != c.want {
			t.Errorf("DottedPrefix(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
