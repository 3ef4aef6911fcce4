package slug_test

import (
	"testing"

	"examprep/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"R6 Spring":           "r6-spring",
		"  --AP  exam!!  ":    "ap-exam",
		"":                    "untitled",
		"???":                 "untitled",
		"\uff32\uff16 \u6625": "r6-\u6625",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromPath(t *testing.T) {
	t.Parallel()
	if got := slug.FromPath("/tmp/sets/2024 Autumn.yaml"); got != "2024-autumn" {
		t.Fatalf("unexpected slug %q", got)
	}
}
