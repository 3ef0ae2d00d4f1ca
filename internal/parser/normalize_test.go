package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeCleansWhitespace(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "crlf and tabs",
			raw:  "John Doe\r\n\tSenior Engineer\r\n",
			want: []string{"John Doe", "Senior Engineer"},
		},
		{
			name: "blank runs collapse",
			raw:  "a\n\n\n\nb",
			want: []string{"a", "", "b"},
		},
		{
			name: "leading and trailing blanks dropped",
			raw:  "\n\n  \na\nb\n\n\n",
			want: []string{"a", "b"},
		},
		{
			name: "nbsp and interior runs",
			raw:  "a b\n\n c   d ",
			want: []string{"a b", "", "c d"},
		},
		{
			name: "form feed acts as newline",
			raw:  "page one\fpage two",
			want: []string{"page one", "page two"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "only whitespace",
			raw:  " \n\t\n   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Normalize(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"John Doe\r\n\r\nSUMMARY\nBuilder of things.\n\n\nSKILLS\nGo, SQL",
		"a  b\n\n\n\nc\td",
		"\n\nonly\n\n",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := NormalizeLines(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("normalize not idempotent for %q: %#v then %#v", raw, once, twice)
		}
	}
}

func TestNormalizeKeepsNonBlankLines(t *testing.T) {
	raw := "alpha\n\nbeta\ngamma\n\n\ndelta"
	got := Normalize(raw)

	var content []string
	for _, line := range got {
		if line != "" {
			content = append(content, line)
		}
	}
	want := []string{"alpha", "beta", "gamma", "delta"}
	if !reflect.DeepEqual(content, want) {
		t.Fatalf("content lines = %#v, want %#v", content, want)
	}
	if strings.Contains(strings.Join(got, "|"), "||") {
		t.Fatalf("adjacent separators survived: %#v", got)
	}
}
