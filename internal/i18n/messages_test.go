package i18n

import "testing"

func TestTFallsBackToEnglishThenKey(t *testing.T) {
	if got := T(LangAR, "listing.created"); got == "" || got == "listing.created" {
		t.Fatalf("arabic message missing: %q", got)
	}
	if got := T("fr", "listing.created"); got != catalog[LangEN]["listing.created"] {
		t.Fatalf("unknown language should fall back to english, got %q", got)
	}
	if got := T(LangEN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
}

func TestPickLanguage(t *testing.T) {
	cases := []struct {
		query, header, want string
	}{
		{"ar", "", LangAR},
		{"", "ar-AE,ar;q=0.9,en;q=0.8", LangAR},
		{"", "en-US,en;q=0.5", LangEN},
		{"en", "ar", LangEN},
		{"", "", LangEN},
		{"", "fr-FR,fr;q=0.9", LangEN},
	}
	for _, tc := range cases {
		if got := Pick(tc.query, tc.header); got != tc.want {
			t.Fatalf("Pick(%q, %q) = %q, want %q", tc.query, tc.header, got, tc.want)
		}
	}
}

func TestEveryKeyHasBothLanguages(t *testing.T) {
	for key := range catalog[LangEN] {
		if _, ok := catalog[LangAR][key]; !ok {
			t.Fatalf("key %q missing arabic translation", key)
		}
	}
	for key := range catalog[LangAR] {
		if _, ok := catalog[LangEN][key]; !ok {
			t.Fatalf("key %q missing english translation", key)
		}
	}
}
