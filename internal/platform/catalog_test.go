package platform

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "exact key", in: "chatgpt", out: "chatgpt"},
		{name: "case folded", in: "ChatGPT", out: "chatgpt"},
		{name: "display name with space", in: "Google Search", out: "google_search"},
		{name: "fuzzy abbreviation", in: "gpt", out: "chatgpt"},
		{name: "trimmed", in: "  claude  ", out: "claude"},
		{name: "empty defaults to unknown", in: "", out: "unknown"},
		{name: "unmatched passes through", in: "somebot", out: "somebot"},
		{name: "unmatched with spaces", in: "My Local Model", out: "my_local_model"},
	}

	for _, tc := range cases {
		if got := Resolve(tc.in); got != tc.out {
			t.Errorf("%s: Resolve(%q) = %q, want %q", tc.name, tc.in, got, tc.out)
		}
	}
}

func TestCatalogDefaults(t *testing.T) {
	if Name("somebot") != "somebot" {
		t.Errorf("Name should fall back to the key itself")
	}
	if Name("") != "unknown" {
		t.Errorf("empty key should read as unknown")
	}
	if Color("somebot") != DefaultColor {
		t.Errorf("Color should fall back to %s", DefaultColor)
	}
	if Icon("somebot") != DefaultIcon {
		t.Errorf("Icon should fall back to %s", DefaultIcon)
	}
	if EstimateCarbon("somebot") != 0 {
		t.Errorf("unknown platforms have no carbon estimate")
	}
}

func TestEstimateCarbon(t *testing.T) {
	if got := EstimateCarbon("chatgpt"); got != 4.4 {
		t.Errorf("chatgpt estimate = %v, want 4.4", got)
	}
	if got := EstimateCarbon("google_search"); got != 0.2 {
		t.Errorf("google_search estimate = %v, want 0.2", got)
	}
}
