package scratch

import "testing"

func TestChainedAppends(t *testing.T) {
	var b Buffer
	b.S("fps ").F(59.94, 1).S("  draws ").I(3).S("  allocs ").U(812).C('\n').S("ok")

	want := "fps 59.9  draws 3  allocs 812\nok"
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := b.View(); got != want {
		t.Fatalf("View() = %q, want %q", got, want)
	}
	if b.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(want))
	}
}

func TestNegativeAndPrecision(t *testing.T) {
	var b Buffer
	b.I(-42).C(' ').F(-0.5, 3).C(' ').F(2, 0)
	if got := b.String(); got != "-42 -0.500 2" {
		t.Fatalf("got %q", got)
	}
}

func TestResetRetainsCapacity(t *testing.T) {
	b := New(64)
	for i := 0; i < 100; i++ {
		b.S("0123456789")
	}
	grown := b.Cap()
	if grown < 1000 {
		t.Fatalf("Cap() = %d after 1000 bytes", grown)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len() = %d after Reset", b.Len())
	}
	if b.Cap() != grown {
		t.Fatalf("Reset dropped capacity: %d -> %d", grown, b.Cap())
	}

	b.S("reuse")
	if b.String() != "reuse" {
		t.Fatalf("got %q after reuse", b.String())
	}
}

func TestViewEmpty(t *testing.T) {
	var b Buffer
	if got := b.View(); got != "" {
		t.Fatalf("View() on empty buffer = %q", got)
	}
	b.S("x").Reset()
	if got := b.View(); got != "" {
		t.Fatalf("View() after Reset = %q", got)
	}
}
