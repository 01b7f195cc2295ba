package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		LoanID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	if err := cv.Validate(P{LoanID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                      // empty
		strings.Repeat("A", 32), // uppercase
		"deadbeef",              // too short
		strings.Repeat("g", 32), // non-hex char
		strings.Repeat("a", 31), // 31 chars
		strings.Repeat("a", 33), // 33 chars
	} {
		err := cv.Validate(P{LoanID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "LoanID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q", s)
		}
	}
}

func TestMoneyValidation(t *testing.T) {
	type P struct {
		Amount string `validate:"money"`
	}
	cv := NewValidator()

	for _, v := range []string{"0", "5000", "5000.00", "481.61", "-3.14", "0.1"} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected money OK for %q, got %v", v, err)
		}
	}
	for _, v := range []string{"", "5000.123", "1,000.00", "abc", "5_000", "1.2.3"} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected money error for %q", v)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Amount", "at most 2 decimal places") {
			t.Fatalf("expected money message for %q", v)
		}
	}
}

func TestRateValidation(t *testing.T) {
	type P struct {
		Rate string `validate:"rate"`
	}
	cv := NewValidator()

	for _, v := range []string{"15.50", "0.9", "12", "0"} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected rate OK for %q, got %v", v, err)
		}
	}
	for _, v := range []string{"", "-1.00", "15.505", "15%"} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected rate error for %q", v)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Rate", "percentage") {
			t.Fatalf("expected rate message for %q", v)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
		Term int    `validate:"gt=0"`
		Role string `validate:"oneof=borrower lender"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Term: 0, Role: "admin"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Term", "greater than 0") {
		t.Fatalf("missing gt message for Term: %+v", fe)
	}
	if !containsFieldMsg(fe, "Role", "one of: borrower lender") {
		t.Fatalf("missing oneof message for Role: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
