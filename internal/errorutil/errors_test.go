package errorutil_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

type grammarErr string

func (e grammarErr) Error() string { return string(e) }

func (grammarErr) Grammar() bool { return true }

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "sentinel"},
		{"error", []any{errors.New("boom")}, "sentinel: boom"},
		{"already wrapped", []any{errSentinel}, "sentinel"},
		{"string", []any{"bad value"}, "sentinel: bad value"},
		{"format", []any{"bad value %q", "x"}, `sentinel: bad value "x"`},
		{"unsupported arg", []any{123}, "sentinel"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			if diff := cmp.Diff(err, error(errSentinel), cmpopts.EquateErrors()); diff != "" {
				t.Errorf("err = %v, want %v\ndiff (-got +want):\n%v", err, errSentinel, diff)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	if err := errorutil.Join(nil, nil); err != nil {
		t.Errorf("errorutil.Join(nil, nil) = %v, want nil", err)
	}

	e1 := errors.New("first")
	if err := errorutil.Join(nil, e1); err != e1 { //nolint:errorlint
		t.Errorf("errorutil.Join(nil, e1) = %v, want %v", err, e1)
	}

	e2 := errors.New("second")
	err := errorutil.JoinPrefix("parse:", e1, nil, e2)
	if want := "parse:\n  - first\n  - second"; err.Error() != want {
		t.Errorf("errorutil.JoinPrefix(...).Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Errorf("errors.Is(err, e1|e2) = false, want true")
	}

	if err := errorutil.JoinPrefix("parse:", e1); err.Error() != "parse: first" {
		t.Errorf("errorutil.JoinPrefix(\"parse:\", e1).Error() = %q, want %q", err.Error(), "parse: first")
	}
}

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("x"), false},
		{"grammar", grammarErr("x"), true},
		{"wrapped grammar", errorutil.NewWrapperError(errSentinel, grammarErr("x")), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := errorutil.IsGrammarErr(c.err); got != c.want {
				t.Errorf("errorutil.IsGrammarErr(err) = %v, want %v", got, c.want)
			}
		})
	}
}
