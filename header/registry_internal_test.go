package header

import (
	"errors"
	"testing"
)

func TestRegisterParser_HashCollision(t *testing.T) {
	// Not parallel: modifies the built-in identity table.

	const name = "X-Collision"
	builtinIDs[HashName(name)] = "Fake-Builtin"
	t.Cleanup(func() { delete(builtinIDs, HashName(name)) })

	err := RegisterParser(name, func(value string) (Header, error) { return NewAny(name, value), nil })
	if !errors.Is(err, ErrHashCollision) {
		t.Errorf("RegisterParser(%q, fn) error = %v, want %v", name, err, ErrHashCollision)
	}
	if _, ok := customs.Get(Name(name)); ok {
		t.Errorf("parser for %q is registered, want refused", name)
	}
}

func TestBuiltins_Identity(t *testing.T) {
	t.Parallel()

	for name, fn := range builtins {
		hdr, err := fn(goodValues[name])
		if err != nil {
			t.Fatalf("builtins[%q](...) error = %v, want nil", name, err)
		}
		if hdr.CanonicName() != name {
			t.Errorf("builtins[%q] produced %q", name, hdr.CanonicName())
		}
		if got, want := hdr.ID(), HashName(name); got != want {
			t.Errorf("builtins[%q] ID() = %v, want %v", name, got, want)
		}
		if bn := builtinIDs[hdr.ID()]; bn != name {
			t.Errorf("builtinIDs[builtins[%q].ID()] = %q, want %q", name, bn, name)
		}
	}
}

// Values that parse for headers rejecting an empty value.
var goodValues = map[Name]string{
	"Content-Length": "0",
	"Content-Type":   "text/plain",
}
