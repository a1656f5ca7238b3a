package ai

import (
	"strings"
	"testing"
)

func TestRespondDeterministic(t *testing.T) {
	inputs := []struct {
		message string
		lang    string
	}{
		{"I have a fever and headache for 3 days", "en-US"},
		{"bad cough since yesterday", "hi-IN"},
		{"my stomach hurts", "te-IN"},
		{"I feel tired all the time", "en-US"},
	}
	for _, in := range inputs {
		first := Respond(in.message, in.lang)
		for i := 0; i < 5; i++ {
			if got := Respond(in.message, in.lang); got != first {
				t.Errorf("Respond(%q, %q) not deterministic", in.message, in.lang)
			}
		}
		if strings.TrimSpace(first) == "" {
			t.Errorf("Respond(%q, %q) returned empty text", in.message, in.lang)
		}
	}
}

func TestClassifySymptomsOrder(t *testing.T) {
	cases := []struct {
		message string
		want    symptomCategory
	}{
		{"I have a fever and headache for 3 days", categoryFeverHeadache},
		{"fever, headache and a bad cough", categoryFeverHeadache},
		{"HEADACHE with Fever and stomach pain", categoryFeverHeadache},
		{"a dry cough since monday", categoryCoughCold},
		{"caught a cold last week", categoryCoughCold},
		{"my stomach hurts after lunch", categoryStomach},
		{"diarrhea and vomiting since morning", categoryStomach},
		{"I feel dizzy and tired", categoryGeneric},
		{"", categoryGeneric},
	}
	for _, c := range cases {
		if got := classifySymptoms(c.message); got != c.want {
			t.Errorf("classifySymptoms(%q) = %v, want %v", c.message, got, c.want)
		}
	}
}

func TestRespondUnsupportedLanguageFallsBack(t *testing.T) {
	msg := "I have a fever and headache"
	got := Respond(msg, "xx-XX")
	want := Respond(msg, DefaultLanguage)
	if got != want {
		t.Errorf("unsupported tag should resolve to default language response")
	}
}

func TestRespondLocalized(t *testing.T) {
	msg := "stomach pain"
	en := Respond(msg, "en-US")
	hi := Respond(msg, "hi-IN")
	te := Respond(msg, "te-IN")
	if en == hi || en == te || hi == te {
		t.Errorf("localized responses should differ per language")
	}
}

func TestRespondMultiParagraph(t *testing.T) {
	for _, lang := range []string{"en-US", "hi-IN", "te-IN"} {
		for _, msg := range []string{"fever and headache", "cough", "vomiting", "unwell"} {
			if got := Respond(msg, lang); !strings.Contains(got, "\n\n") {
				t.Errorf("Respond(%q, %q) should be multi-paragraph", msg, lang)
			}
		}
	}
}
