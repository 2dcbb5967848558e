package predicate

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCompile_CaseSensitive(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"file*", "file3.txt", true},
		{"file*", "file-or-dir", true},
		{"file*", "file2.txt", true},
		{"file*", "file", true},
		{"file*", "4file.txt", false},
		{"file*", "FILE3.txt", false},
		{"*file*", "4file.txt", true},
		{"*file*", "file3.txt", true},
		{"*file*", "fil5e.txt", false},
		{"*3.txt", "file3.txt", true},
		{"*3.txt", "FILE3.txt", true},
		{"*3.txt", "3.txt", true},
		{"*3.txt", "file3.txt.bak", false},
		{"file3.txt", "file3.txt", true},
		{"file3.txt", "FILE3.txt", false},
		{"file3.txt", "file3.txtx", false},
		{"file3.txt", "xfile3.txt", false},
		{"f*e*.txt", "fil5e.txt", true},
		{"f*e*.txt", "file3.txt", true},
		{"a**b", "ab", true},
		{"*", "", true},
		{"*", "anything at all", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern, true)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := m.Match(tt.name); got != tt.want {
				t.Errorf("Compile(%q).Match(%q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
			}
		})
	}
}

func TestCompile_CaseInsensitive(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"file3.txt", "file3.txt", true},
		{"file3.txt", "FILE3.txt", true},
		{"file3.txt", "FiLe3.TxT", true},
		{"fIlE*", "FiLe1OnE.txT", true},
		{"fIlE*", "file-or-dir", true},
		{"fIlE*", "4file.txt", false},
		{"*FiLe*", "4file.txt", true},
		{"*FiLe*", "DIR3", false},
		{"*.TXT", "notes.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern, false)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := m.Match(tt.name); got != tt.want {
				t.Errorf("Compile(%q).Match(%q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
			}
		})
	}
}

func TestCompile_LiteralMetaCharacters(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"question mark is literal", "file?.txt", "file?.txt", true},
		{"question mark is not a wildcard", "file?.txt", "file1.txt", false},
		{"brackets are literal", "[2024]*", "[2024] notes", true},
		{"brackets are not a class", "[ab].txt", "a.txt", false},
		{"braces are literal", "{daily}.md", "{daily}.md", true},
		{"braces are not alternation", "{a,b}", "a", false},
		{"dots are literal", "v1.0.0*", "v1.0.0-notes", true},
		{"dots do not match any", "a.c", "abc", false},
		{"backslash is literal", `a\b`, `a\b`, true},
		{"backslash before star", `a\*`, `a\xyz`, true},
		{"backslash before star needs backslash", `a\*`, "axyz", false},
		{"regex anchors are literal", "^x$", "^x$", true},
		{"plus and parens", "C++ (copy)*", "C++ (copy) 2", true},
		{"unicode", "日本*", "日本語.md", true},
		{"spaces", "my *", "my notes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchGlob(tt.pattern, tt.input, true)
			if err != nil {
				t.Fatalf("MatchGlob(%q) error = %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("MatchGlob(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestCompile_InvalidPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"path separator", "dir/file"},
		{"trailing separator", "dir/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern, true)
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Compile(%q) error = %v, want ErrInvalidPattern", tt.pattern, err)
			}
		})
	}
}

func TestCompile_InvalidUTF8(t *testing.T) {
	tests := []struct {
		pattern       string
		caseSensitive bool
		name          string
		want          bool
	}{
		{"a\xffb", true, "a\xffb", true},
		{"a\xffb", true, "a\xfeb", false},
		{"a\xffb", true, "a�b", false},
		{"a\xffb", false, "a\xfeb", false},
		{"a\xffb", false, "A\xffB", true},
		{"A\xff*", false, "a\xffzzz", true},
		{"*\xff*\xfe", true, "x\xffy\xfe", true},
		{"*\xff*\xfe", true, "x\xfey\xff", false},
		{"\xff*\xff", true, "\xff", false},
		{"\xff*\xff", true, "\xff\xff", true},
		{"*", true, "a\xffb", true},
		{"a*b", true, "a\xffb", true},
		{"a*b", false, "A\xffB", true},
		{"a�b", true, "a\xffb", false},
		{"a�b", false, "a\xffb", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%q", tt.pattern, tt.name), func(t *testing.T) {
			m, err := Compile(tt.pattern, tt.caseSensitive)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := m.Match(tt.name); got != tt.want {
				t.Errorf("Compile(%q, %v).Match(%q) = %v, want %v", tt.pattern, tt.caseSensitive, tt.name, got, tt.want)
			}
		})
	}
}

// -iname P accepts N exactly when -name lower(P) accepts lower(N).
func TestCompile_CaseInsensitiveEquivalence(t *testing.T) {
	patterns := []string{"file3.txt", "FILE*", "*FiLe*", "*.TXT", "Dir*3", "*"}
	names := []string{"file3.txt", "FILE3.txt", "4file.txt", "DIR3", "dir3", "FiLe1OnE.txT", "readme.md", ""}

	for _, p := range patterns {
		insensitive, err := Compile(p, false)
		if err != nil {
			t.Fatalf("Compile(%q, false) error = %v", p, err)
		}
		sensitive, err := Compile(strings.ToLower(p), true)
		if err != nil {
			t.Fatalf("Compile(%q, true) error = %v", strings.ToLower(p), err)
		}
		for _, n := range names {
			if got, want := insensitive.Match(n), sensitive.Match(strings.ToLower(n)); got != want {
				t.Errorf("-iname %q on %q = %v, but -name lower = %v", p, n, got, want)
			}
		}
	}
}

func TestMatcher_String(t *testing.T) {
	m, err := Compile("FILE*", false)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := m.String(); got != "file*" {
		t.Errorf("String() = %q, want %q", got, "file*")
	}
}
