package glyph

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Symbol
	}{
		{in: "", want: Task},
		{in: "•", want: Task},
		{in: "task", want: Task},
		{in: "O", want: Event},
		{in: "nota", want: Note},
		{in: ">", want: Migrated},
		{in: "done", want: Completed},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := Parse("?"); err == nil {
		t.Fatalf("expected error for unknown symbol")
	}
}

func TestUnknownSymbolDescribesItself(t *testing.T) {
	g := Symbol("*").Glyph()
	if g.Noun != "*" || g.Meaning != "*" {
		t.Fatalf("unexpected glyph for unknown symbol: %+v", g)
	}
}
