package catalog

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/models"
)

// seqIDs returns a deterministic generator: id-1, id-2, ...
func seqIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestSeed(t *testing.T) {
	t.Run("empty catalog gets the sample products", func(t *testing.T) {
		c := New(nil, seqIDs())

		if !c.Seed() {
			t.Fatal("Seed() = false, want true for empty catalog")
		}

		products := c.Products()
		if len(products) != 6 {
			t.Fatalf("expected 6 sample products, got %d", len(products))
		}
		if products[0].Name != "Coca Cola" || products[0].Barcode != "701228" {
			t.Errorf("first sample = %+v, want Coca Cola / 701228", products[0])
		}
		for i, p := range products {
			if p.ID == "" {
				t.Errorf("sample %d has no ID", i)
			}
		}
	})

	t.Run("existing catalog is left unchanged", func(t *testing.T) {
		existing := []models.Product{{ID: "x", Name: "Gum", Price: 1}}
		c := New(existing, seqIDs())

		if c.Seed() {
			t.Fatal("Seed() = true, want false for non-empty catalog")
		}
		if got := c.Products(); len(got) != 1 || got[0].ID != "x" {
			t.Errorf("catalog changed: %+v", got)
		}
	})
}

func TestAdd(t *testing.T) {
	t.Run("rejects invalid input without changing the catalog", func(t *testing.T) {
		tests := []struct {
			name  string
			pname string
			price float64
		}{
			{"empty name", "", 1},
			{"whitespace name", "   ", 1},
			{"negative price", "Gum", -1},
			{"NaN price", "Gum", math.NaN()},
			{"infinite price", "Gum", math.Inf(1)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := New(nil, seqIDs())
				c.Seed()
				before := len(c.Products())

				_, err := c.Add("999", tt.pname, tt.price)

				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if got := len(c.Products()); got != before {
					t.Errorf("catalog size changed from %d to %d", before, got)
				}
			})
		}
	})

	t.Run("rounds price at the cent boundary", func(t *testing.T) {
		c := New(nil, seqIDs())
		p, err := c.Add("999", "Gum", 1.005)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		// Half away from zero on the cents boundary.
		if p.Price != 1.01 {
			t.Errorf("Price = %v, want 1.01", p.Price)
		}
	})

	t.Run("prepends so newest comes first", func(t *testing.T) {
		c := New(nil, seqIDs())
		c.Seed()

		p, err := c.Add("999", "  Gum  ", 0.80)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		products := c.Products()
		if products[0].ID != p.ID {
			t.Errorf("newest product not first: %+v", products[0])
		}
		if p.Name != "Gum" {
			t.Errorf("Name = %q, want trimmed %q", p.Name, "Gum")
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		c := New(nil, seqIDs())
		if _, err := c.Add("", "Freebie", 0); err != nil {
			t.Errorf("Add with zero price failed: %v", err)
		}
	})
}

func TestSearch(t *testing.T) {
	c := New(nil, seqIDs())
	c.Seed()

	t.Run("case-insensitive substring on name", func(t *testing.T) {
		got := c.Search("cola")
		if len(got) != 1 || got[0].Name != "Coca Cola" {
			t.Errorf("Search(cola) = %+v, want Coca Cola", got)
		}
	})

	t.Run("matches barcode substring", func(t *testing.T) {
		got := c.Search("0101")
		if len(got) != 1 || got[0].Name != "Polo Shirt" {
			t.Errorf("Search(0101) = %+v, want Polo Shirt", got)
		}
	})

	t.Run("blank query returns everything in order", func(t *testing.T) {
		got := c.Search("   ")
		if len(got) != 6 {
			t.Fatalf("expected full catalog, got %d products", len(got))
		}
		if got[0].Name != "Coca Cola" || got[5].Name != "Coffee" {
			t.Errorf("catalog order not preserved: first=%q last=%q", got[0].Name, got[5].Name)
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		if got := c.Search("zzz"); len(got) != 0 {
			t.Errorf("Search(zzz) = %+v, want empty", got)
		}
	})
}

func TestFindByID(t *testing.T) {
	c := New(nil, seqIDs())
	c.Seed()
	target := c.Products()[2]

	got, ok := c.FindByID(target.ID)
	if !ok || got.Name != target.Name {
		t.Errorf("FindByID(%s) = %+v, %v", target.ID, got, ok)
	}

	if _, ok := c.FindByID("ghost"); ok {
		t.Error("FindByID(ghost) = true, want false")
	}
}
