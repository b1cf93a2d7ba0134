package ordering

import "testing"

func TestSlugifyBasic(t *testing.T) {
	cases := map[string]string{
		"Villas":                 "villas",
		"  Palm   Jumeirah  ":    "palm-jumeirah",
		"Down_Town--Dubai":       "down-town-dubai",
		"Office (Sea View!) 2BR": "office-sea-view-2br",
		"":                       "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugifyPreservesArabic(t *testing.T) {
	got := Slugify("فيلا فاخرة")
	if got != "فيلا-فاخرة" {
		t.Fatalf("arabic slug mangled: %q", got)
	}
}

func TestSlugifyNormalizesCompatibilityForms(t *testing.T) {
	// fullwidth latin should fold to plain ascii under NFKC
	if got := Slugify("Ｖｉｌｌａ ９"); got != "villa-9" {
		t.Fatalf("fullwidth input not normalized: %q", got)
	}
}

func TestSlugifySymbolsOnlyYieldsEmpty(t *testing.T) {
	for _, in := range []string{"!!!", "©®™", "...", "؟!،", "---", "   "} {
		if got := Slugify(in); got != "" {
			t.Fatalf("Slugify(%q) = %q, want empty", in, got)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Villas", "Palm  Jumeirah", "فيلا فاخرة", "Mixed شقة 3BR", "a_b-c d"}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
