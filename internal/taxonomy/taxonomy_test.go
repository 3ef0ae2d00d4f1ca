package taxonomy

import (
	"strings"
	"testing"
)

func TestContainsKeywordWholeWord(t *testing.T) {
	tests := []struct {
		text    string
		keyword string
		want    bool
	}{
		{"built services in go and sql", "go", true},
		{"django developer", "go", false},
		{"mongodb and postgres", "go", false},
		{"go", "go", true},
		{"shipped c++ engines", "c++", true},
		{"node.js services", "node.js", true},
		{"ci/cd pipelines", "ci/cd", true},
		{"javascript heavy frontend", "java", false},
		{"java and javascript", "java", true},
		{"machine learning pipelines", "machine learning", true},
		{"", "go", false},
		{"anything", "", false},
	}

	for _, tt := range tests {
		if got := ContainsKeyword(tt.text, tt.keyword); got != tt.want {
			t.Errorf("ContainsKeyword(%q, %q) = %v, want %v", tt.text, tt.keyword, got, tt.want)
		}
	}
}

func TestMatchSplitsFoundAndMissing(t *testing.T) {
	res := Match("Led a team building Go microservices on Kubernetes with PostgreSQL. Improved throughput. Strong communication.")

	for _, want := range []string{"go", "microservices", "kubernetes", "postgresql"} {
		if !contains(res.Technical, want) {
			t.Errorf("technical match missing %q: %#v", want, res.Technical)
		}
	}
	if !contains(res.Soft, "communication") {
		t.Errorf("soft matches = %#v", res.Soft)
	}
	for _, want := range []string{"led", "improved"} {
		if !contains(res.Verbs, want) {
			t.Errorf("verb matches = %#v", res.Verbs)
		}
	}

	if len(res.Technical)+len(res.MissingTechnical) != len(Technical) {
		t.Fatalf("technical partition broken: %d + %d != %d", len(res.Technical), len(res.MissingTechnical), len(Technical))
	}
	if contains(res.MissingTechnical, "go") {
		t.Fatal("matched keyword also listed as missing")
	}
}

func TestMatchEmptyCorpus(t *testing.T) {
	res := Match("")
	if len(res.Technical) != 0 || len(res.Soft) != 0 || len(res.Verbs) != 0 {
		t.Fatalf("empty corpus matched keywords: %#v", res)
	}
	if len(res.MissingTechnical) != len(Technical) {
		t.Fatalf("missing technical = %d, want %d", len(res.MissingTechnical), len(Technical))
	}
}

// The reference sets are tuning surfaces. Shrinking them below the sizes the
// score calibration assumes would silently skew every dimension.
func TestReferenceSetSizes(t *testing.T) {
	if len(Technical) < 50 {
		t.Errorf("technical set shrank to %d", len(Technical))
	}
	if len(Soft) < 15 {
		t.Errorf("soft set shrank to %d", len(Soft))
	}
	if len(Verbs) < 30 {
		t.Errorf("verb set shrank to %d", len(Verbs))
	}
}

func TestReferenceSetsAreLowercase(t *testing.T) {
	for _, set := range [][]string{Technical, Soft, Verbs} {
		for _, kw := range set {
			if kw != strings.ToLower(kw) {
				t.Errorf("keyword %q is not lower-cased", kw)
			}
		}
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
