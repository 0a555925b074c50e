package i18n

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize("").Code(); got != DefaultLanguage.Code() {
		t.Fatalf("empty normalize should fall back to default, got %q", got)
	}
	if got := Normalize("EN-us"); got != LanguageEnglish {
		t.Fatalf("expected english normalization, got %q", got)
	}
	if got := Normalize("Japanese"); got != LanguageJapanese {
		t.Fatalf("expected japanese alias, got %q", got)
	}
	if got := Normalize("pt"); got != Language("pt") {
		t.Fatalf("expected passthrough for unknown language, got %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	if name := LanguageChinese.DisplayName(); name != "中文" {
		t.Fatalf("unexpected chinese display name: %q", name)
	}
	if name := LanguageEnglish.DisplayName(); name != "English" {
		t.Fatalf("unexpected english display name: %q", name)
	}
	if name := Language("pt").DisplayName(); name != "pt" {
		t.Fatalf("unexpected passthrough display name: %q", name)
	}
}

func TestPromptName(t *testing.T) {
	if name := Language("cn").PromptName(); name != "Simplified Chinese" {
		t.Fatalf("unexpected prompt name: %q", name)
	}
	if Language("pt").Known() {
		t.Fatalf("pt should not be known")
	}
}

func TestT(t *testing.T) {
	if got := T(LanguageEnglish, MsgConverted); got != "Converted" {
		t.Fatalf("unexpected english text: %q", got)
	}
	if got := T(Language("pt"), MsgConverted); got != "已转换" {
		t.Fatalf("unknown language should fall back to default, got %q", got)
	}
	if got := T(LanguageJapanese, MsgConverted); got != "已转换" {
		t.Fatalf("language without catalog should fall back to default, got %q", got)
	}
	if got := T(LanguageChinese, MsgRegexFoundBody, 3); got != "共找到 3 个结果" {
		t.Fatalf("unexpected formatted text: %q", got)
	}
	if got := T(LanguageEnglish, Key("missing")); got != "missing" {
		t.Fatalf("unknown key should pass through, got %q", got)
	}
}
