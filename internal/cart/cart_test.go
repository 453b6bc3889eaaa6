package cart

import (
	"math"
	"testing"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/models"
)

func TestAddOrIncrement(t *testing.T) {
	t.Run("repeated adds keep a single line", func(t *testing.T) {
		lines := Lines{}
		for range 5 {
			lines = lines.AddOrIncrement("p1")
		}

		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Qty != 5 {
			t.Errorf("Qty = %d, want 5", lines[0].Qty)
		}
	})

	t.Run("distinct products get distinct lines in order", func(t *testing.T) {
		lines := Lines{}.AddOrIncrement("p1").AddOrIncrement("p2").AddOrIncrement("p1")

		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[0].ProductID != "p1" || lines[0].Qty != 2 {
			t.Errorf("first line = %+v, want p1 qty 2", lines[0])
		}
		if lines[1].ProductID != "p2" || lines[1].Qty != 1 {
			t.Errorf("second line = %+v, want p2 qty 1", lines[1])
		}
	})
}

func TestSetQty(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		want int
	}{
		{"whole quantity", 4, 4},
		{"fraction floors", 2.9, 2},
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -3, 1},
		{"NaN clamps to one", math.NaN(), 1},
		{"infinity clamps to one", math.Inf(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Lines{{ProductID: "p1", Qty: 7}}.SetQty("p1", tt.qty)
			if lines[0].Qty != tt.want {
				t.Errorf("SetQty(%v): Qty = %d, want %d", tt.qty, lines[0].Qty, tt.want)
			}
		})
	}

	t.Run("missing line is a no-op", func(t *testing.T) {
		lines := Lines{{ProductID: "p1", Qty: 1}}.SetQty("ghost", 3)
		if len(lines) != 1 || lines[0].Qty != 1 {
			t.Errorf("expected untouched cart, got %+v", lines)
		}
	})
}

func TestDecrement(t *testing.T) {
	t.Run("lowers quantity", func(t *testing.T) {
		lines := Lines{{ProductID: "p1", Qty: 3}}.Decrement("p1")
		if lines[0].Qty != 2 {
			t.Errorf("Qty = %d, want 2", lines[0].Qty)
		}
	})

	t.Run("removes line at zero", func(t *testing.T) {
		lines := Lines{{ProductID: "p1", Qty: 1}}.Decrement("p1")
		if len(lines) != 0 {
			t.Errorf("expected empty cart, got %+v", lines)
		}
	})

	t.Run("missing line is a no-op", func(t *testing.T) {
		lines := Lines{{ProductID: "p1", Qty: 1}}.Decrement("ghost")
		if len(lines) != 1 {
			t.Errorf("expected untouched cart, got %+v", lines)
		}
	})
}

func TestRemove(t *testing.T) {
	lines := Lines{
		{ProductID: "p1", Qty: 9},
		{ProductID: "p2", Qty: 1},
	}

	lines = lines.Remove("p1")
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Errorf("expected only p2 left, got %+v", lines)
	}

	// Removing again is a no-op.
	lines = lines.Remove("p1")
	if len(lines) != 1 {
		t.Errorf("expected untouched cart, got %+v", lines)
	}
}

func TestClearAndCount(t *testing.T) {
	lines := Lines{}.AddOrIncrement("p1").AddOrIncrement("p1").AddOrIncrement("p2")

	if got := lines.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	lines = lines.Clear()
	if len(lines) != 0 {
		t.Errorf("expected empty cart after Clear, got %+v", lines)
	}
	if got := lines.Count(); got != 0 {
		t.Errorf("Count after Clear = %d, want 0", got)
	}
}

func TestCountMixedQuantities(t *testing.T) {
	lines := Lines{
		models.CartLine{ProductID: "p1", Qty: 2},
		models.CartLine{ProductID: "p2", Qty: 5},
	}
	if got := lines.Count(); got != 7 {
		t.Errorf("Count = %d, want 7", got)
	}
}
