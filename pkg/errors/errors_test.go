package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorIs(t *testing.T) {
	err := &ValidationError{Field: "workers", Message: "must be positive"}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should report true")
	}
	want := "validation failed for field workers: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrorWithoutField(t *testing.T) {
	err := &ValidationError{Message: "bad registry"}
	if err.Error() != "validation failed: bad registry" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapIO(t *testing.T) {
	underlying := errors.New("permission denied")
	err := WrapIO("read", "/data/a.csv", underlying)
	if !errors.Is(err, underlying) {
		t.Error("wrapped IOError should unwrap to the underlying error")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("expected *IOError")
	}
	if ioErr.Path != "/data/a.csv" || ioErr.Operation != "read" {
		t.Errorf("unexpected fields: %+v", ioErr)
	}
	if WrapIO("read", "x", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
}

func TestWrapParse(t *testing.T) {
	underlying := errors.New("bare quote in field")
	err := WrapParse("csv", "b.csv", underlying)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("expected *ParseError")
	}
	if parseErr.Format != "csv" || parseErr.File != "b.csv" {
		t.Errorf("unexpected fields: %+v", parseErr)
	}
	if WrapParse("csv", "x", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
}

func TestWrapConfig(t *testing.T) {
	err := WrapConfig("registry", errors.New("fields missing"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatal("expected *ConfigError")
	}
	if cfgErr.Component != "registry" {
		t.Errorf("Component = %q", cfgErr.Component)
	}
}

func TestIsCanceled(t *testing.T) {
	if !IsCanceled(fmt.Errorf("run aborted: %w", ErrCanceled)) {
		t.Error("wrapped ErrCanceled should be detected")
	}
	if IsCanceled(errors.New("other")) {
		t.Error("unrelated error should not be canceled")
	}
}
