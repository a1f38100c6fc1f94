package schema

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	logs "github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

func TestValidateKnownTypes(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		id       TypeID
		children int
	}{
		{TypeLiteral, 0},
		{TypeSum, 1},
		{TypeProduct, 5},
		{TypeMinimum, 2},
		{TypeMaximum, 3},
		{TypeGreaterThan, 2},
		{TypeLessThan, 2},
		{TypeEqualTo, 2},
	}
	for _, tc := range cases {
		if err := Validate(tc.id, tc.children); err != nil {
			t.Fatalf("validate %s/%d: %v", tc.id, tc.children, err)
		}
	}
}

func TestValidateComparisonArityDeterministic(t *testing.T) {
	testlog.Start(t)
	for _, n := range []int{0, 1, 3} {
		err := Validate(TypeEqualTo, n)
		if !errors.Is(err, ErrArity) {
			t.Fatalf("children=%d: expected ErrArity, got %v", n, err)
		}
		ve, ok := err.(ValidationError)
		if !ok {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if ve.Type != TypeEqualTo || ve.Children != n {
			t.Fatalf("unexpected validation error: %+v", ve)
		}
	}
}

func TestValidateEmptyOperator(t *testing.T) {
	testlog.Start(t)
	if err := Validate(TypeSum, 0); !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
}

func TestValidateLiteralWithChildren(t *testing.T) {
	testlog.Start(t)
	if err := Validate(TypeLiteral, 1); !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
}

func TestValidateUnknownType(t *testing.T) {
	testlog.Start(t)
	err := Validate(TypeID(9), 2)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if TypeID(9).String() != "Type(9)" {
		t.Fatalf("unexpected name %q", TypeID(9).String())
	}
}

func TestLookup(t *testing.T) {
	req, ok := Lookup(TypeMaximum)
	if !ok || req.Symbol != "max" || req.MinChildren != 1 || req.MaxChildren != Unbounded {
		t.Fatalf("unexpected requirement: %+v", req)
	}
	req, ok = Lookup(TypeLessThan)
	if !ok || req.MinChildren != 2 || req.MaxChildren != 2 {
		t.Fatalf("unexpected requirement: %+v", req)
	}
	if _, ok := Lookup(TypeID(8)); ok {
		t.Fatalf("type 8 must not resolve")
	}
}

func TestValidateVersion(t *testing.T) {
	if err := ValidateVersion(7); err != nil {
		t.Fatalf("version 7: %v", err)
	}
	if err := ValidateVersion(8); !errors.Is(err, ErrVersion) {
		t.Fatalf("expected ErrVersion, got %v", err)
	}
}

func TestParseTypeName(t *testing.T) {
	for _, name := range []string{"Product", "mul"} {
		id, ok := ParseTypeName(name)
		if !ok || id != TypeProduct {
			t.Fatalf("ParseTypeName(%q) = %d, %v", name, id, ok)
		}
	}
	if _, ok := ParseTypeName("Divide"); ok {
		t.Fatalf("unknown name must not resolve")
	}
}

func TestValidateFailureLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logs.Apply(logs.Config{Level: zerolog.InfoLevel, Bypass: true, Out: &buf})
	t.Cleanup(func() {
		logs.Apply(logs.Config{Level: zerolog.InfoLevel, Bypass: true, Out: io.Discard})
	})

	if err := Validate(TypeEqualTo, 1); !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("validation failure logged above debug: %s", buf.String())
	}

	logs.SetLevel(zerolog.DebugLevel)
	_ = Validate(TypeID(9), 0)
	if !strings.Contains(buf.String(), `"level":"debug"`) {
		t.Fatalf("expected a debug line, got %q", buf.String())
	}
}
