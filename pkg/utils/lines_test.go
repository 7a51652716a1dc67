package utils

import (
	"reflect"
	"testing"
)

func TestStripComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"push constant 1", "push constant 1"},
		{"  @R0   // zero", "@R0"},
		{"// whole line", ""},
		{"\tD=M\t", "D=M"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := StripComment(tc.in); got != tc.want {
			t.Errorf("StripComment(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanLines(t *testing.T) {
	raw := []string{"// header", "", "  add  ", "push constant 1 // one", "   "}
	want := []string{"add", "push constant 1"}
	if got := CleanLines(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("CleanLines = %q; want %q", got, want)
	}
}

func TestNumberLines(t *testing.T) {
	raw := []string{"// header", "@1", "", "D=A // load"}
	want := []Line{{No: 2, Text: "@1"}, {No: 4, Text: "D=A"}}
	if got := NumberLines(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("NumberLines = %+v; want %+v", got, want)
	}
}
