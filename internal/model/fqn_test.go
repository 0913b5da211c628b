package model

import "testing"

func TestNewFqn_Normalizes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a.b.c", want: "a.b.c"},
		{in: "a/b/c", want: "a.b.c"},
		{in: `a\b\c`, want: "a.b.c"},
		{in: "  Psr/Log\\Logger \t", want: "Psr.Log.Logger"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		f := NewFqn(tt.in)
		if f.Name() != tt.want {
			t.Fatalf("NewFqn(%q).Name() = %q, want %q", tt.in, f.Name(), tt.want)
		}
		again := NewFqn(f.Name())
		if again.Name() != f.Name() {
			t.Fatalf("normalization not idempotent for %q: %q -> %q", tt.in, f.Name(), again.Name())
		}
	}
}

func TestFqn_EmptyHasSingleEmptySegment(t *testing.T) {
	f := NewFqn("")
	if !f.IsEmpty() {
		t.Fatal("expected empty fqn")
	}
	if f.Size() != 1 || f.Chunk(0) != "" {
		t.Fatalf("empty fqn chunks = %#v, want one empty segment", f.Chunks())
	}
}

func TestFqn_NameWith(t *testing.T) {
	f := NewFqn("Psr.Log.Logger")
	if got := f.NameWith(`\`); got != `Psr\Log\Logger` {
		t.Fatalf("NameWith() = %q", got)
	}
	if got := f.NameWith(""); got != "Psr.Log.Logger" {
		t.Fatalf("NameWith(\"\") = %q", got)
	}
}

func TestFqn_ChunkClampsToLast(t *testing.T) {
	f := NewFqn("a.b.c")
	if f.Chunk(0) != "a" || f.Chunk(1) != "b" {
		t.Fatalf("unexpected chunks: %#v", f.Chunks())
	}
	for _, offset := range []int{-1, 3, 5, -100} {
		if got := f.Chunk(offset); got != "c" {
			t.Fatalf("Chunk(%d) = %q, want c", offset, got)
		}
	}
}

func TestFqn_Parent(t *testing.T) {
	if got := NewFqn("a.b.c").Parent().Name(); got != "a.b" {
		t.Fatalf("parent of a.b.c = %q", got)
	}
	if got := NewFqn("a").Parent(); !got.IsEmpty() {
		t.Fatalf("parent of a = %q, want empty", got.Name())
	}
	empty := NewFqn("")
	if got := empty.Parent(); !got.IsEmpty() {
		t.Fatalf("parent of empty = %q", got.Name())
	}
	var zero Fqn
	if got := zero.Parent(); got.Size() != 0 {
		t.Fatalf("parent of zero fqn should be itself, got %#v", got)
	}
}
