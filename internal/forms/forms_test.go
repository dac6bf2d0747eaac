package forms

import (
	"testing"
	"time"
)

func TestValidatePostForm(t *testing.T) {
	form := PostForm{
		Title:      "A trip north",
		Text:       "We went north.",
		CategoryID: 1,
		PubDate:    "2025-06-01T12:00",
	}
	if errs := Validate(&form); len(errs) != 0 {
		t.Errorf("valid form rejected: %v", errs)
	}

	empty := PostForm{}
	errs := Validate(&empty)
	for _, field := range []string{"title", "text", "category_id", "pub_date"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
	if _, ok := errs["location_id"]; ok {
		t.Error("location is optional, should not error")
	}
}

func TestParsedPubDate(t *testing.T) {
	form := PostForm{PubDate: "2030-01-02T09:30"}
	got, err := form.ParsedPubDate()
	if err != nil {
		t.Fatalf("ParsedPubDate: %v", err)
	}
	want := time.Date(2030, 1, 2, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParsedPubDate = %v, want %v", got, want)
	}

	form.PubDate = "not a date"
	if _, err := form.ParsedPubDate(); err == nil {
		t.Error("expected parse error for malformed input")
	}
}

func TestValidateProfileForm(t *testing.T) {
	form := ProfileForm{Username: "pat", Email: "not-an-email"}
	errs := Validate(&form)
	if errs["email"] == "" {
		t.Errorf("expected email error, got %v", errs)
	}
	if _, ok := errs["username"]; ok {
		t.Errorf("username is set, should not error: %v", errs)
	}
}

func TestValidateSignupForm(t *testing.T) {
	form := SignupForm{Username: "pat", Email: "pat@example.com", Password: "12345"}
	errs := Validate(&form)
	if errs["password"] == "" {
		t.Errorf("expected short password error, got %v", errs)
	}
}
