package clock

import "testing"

func TestNew(t *testing.T) {
	c, err := New("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Now().Location().String() != "UTC" {
		t.Fatalf("unexpected location %s", c.Now().Location())
	}
	if _, err := New("Mars/Olympus"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}
