package model

import "testing"

func TestContainer_PutReplacesWithoutGrowing(t *testing.T) {
	c := NewContainer()
	first := NewClass(NewFqn("App.User"), Fqn{})
	second := NewClass(NewFqn("App/User"), Fqn{})
	other := NewInterface(NewFqn("App.Named"), Fqn{})

	c.Put(first).Put(other).Put(second)

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	got, ok := c.Get(NewFqn("App.User"))
	if !ok || got != second {
		t.Fatalf("Get() = %p, want replacement %p", got, second)
	}
	if names := c.Names(); names[0] != "App.User" || names[1] != "App.Named" {
		t.Fatalf("Names() = %v, want replacement to keep position", names)
	}
}

func TestContainer_StringLookup(t *testing.T) {
	c := NewContainer().Put(NewClass(NewFqn("Psr.Log.Logger"), Fqn{}))

	if !c.HasName(`Psr\Log\Logger`) {
		t.Fatal("HasName should normalize separators")
	}
	if _, ok := c.GetName("Psr/Log/Logger"); !ok {
		t.Fatal("GetName should normalize separators")
	}
	if c.Has(NewFqn("Psr.Log")) {
		t.Fatal("package name should not resolve to a structure")
	}
	if s, ok := c.GetName("Missing"); ok || s != nil {
		t.Fatalf("GetName(Missing) = %v, %v", s, ok)
	}
}

func TestContainer_PutNilIsNoop(t *testing.T) {
	c := NewContainer()
	if c.Put(nil).Size() != 0 {
		t.Fatal("Put(nil) should not store anything")
	}
}
