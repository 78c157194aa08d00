package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(fields []FieldError, field, fragment string) bool {
	for _, fe := range fields {
		if fe.Field == field && strings.Contains(fe.Message, fragment) {
			return true
		}
	}
	return false
}

type sampleReq struct {
	UserID string  `json:"user_id" validate:"required,hex32"`
	Amount float64 `json:"amount"  validate:"required,gt=0,dec2"`
}

func TestValidator_AcceptsWellFormed(t *testing.T) {
	cv := NewValidator()
	ok := sampleReq{UserID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: 100.25}
	if err := cv.Validate(&ok); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidator_Hex32(t *testing.T) {
	cv := NewValidator()
	for _, bad := range []string{"", "short", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"} {
		req := sampleReq{UserID: bad, Amount: 1}
		err := cv.Validate(&req)
		if err == nil {
			t.Fatalf("id %q passed validation", bad)
		}
		fields := ToFieldErrors(err)
		if len(fields) == 0 {
			t.Fatal("no field errors mapped")
		}
	}
}

func TestValidator_Dec2(t *testing.T) {
	cv := NewValidator()

	req := sampleReq{UserID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: 100.255}
	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("3 decimal places passed validation")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Amount", "decimal") {
		t.Fatalf("field errors: %+v", ToFieldErrors(err))
	}

	req.Amount = 100.25
	if err := cv.Validate(&req); err != nil {
		t.Fatalf("2 decimal places rejected: %v", err)
	}
}
