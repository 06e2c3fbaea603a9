package manifest

import (
	"os"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	data, err := os.ReadFile(testPath("valid.json"))
	if err != nil {
		t.Fatal(err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("Valid = false, issues: %v", result.Issues)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	result, err := Validate([]byte(`{"displayName": "x"}`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true, want false")
	}
	if len(result.Issues) == 0 {
		t.Fatal("no issues reported")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Keyword == "required" {
			found = true
		}
	}
	if !found {
		t.Errorf("no required-keyword issue in %v", result.Issues)
	}
}

func TestValidate_WrongTypedContribution(t *testing.T) {
	doc := `{"name":"x","displayName":"X","contributes":{"themes":[{"id":1,"path":"p"}]}}`
	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true, want false")
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{`)); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}
