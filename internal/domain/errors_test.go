package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpError_MessageIncludesOpKindPath(t *testing.T) {
	err := &OpError{
		Op:   "fsmatcher.collect",
		Kind: KindNotFound,
		Path: "/tmp/missing",
		Err:  ErrNotFound,
	}
	msg := err.Error()
	for _, want := range []string{"fsmatcher.collect", "not_found", "/tmp/missing"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in error message, got %q", want, msg)
		}
	}
}

func TestOpError_Unwrap(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindUsage, Err: ErrNoImages}
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("expected errors.Is to reach the sentinel, got %v", err)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "pngstore.load", Kind: KindDecode, Err: errors.New("bad header")}
	if !IsKind(err, KindDecode) {
		t.Error("expected IsKind=true for matching kind")
	}
	if IsKind(err, KindNotFound) {
		t.Error("expected IsKind=false for other kind")
	}
	if IsKind(errors.New("plain"), KindDecode) {
		t.Error("expected IsKind=false for non-OpError")
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	inner := &OpError{Op: "pngstore.load", Kind: KindDecode, Err: errors.New("bad header")}
	outer := errors.Join(errors.New("pair a"), inner)
	if !IsKind(outer, KindDecode) {
		t.Error("expected IsKind to see through wrapping")
	}
}
