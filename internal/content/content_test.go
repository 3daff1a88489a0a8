package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_LoadsEveryOriginalSection(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Brand.Name != "Leo Coach" {
		t.Errorf("expected brand Leo Coach, got %q", c.Brand.Name)
	}
	if len(c.Services) != 3 || len(c.Steps) != 3 {
		t.Errorf("expected 3 services and 3 steps, got %d and %d", len(c.Services), len(c.Steps))
	}
	if len(c.Programs) != 3 {
		t.Fatalf("expected 3 programs, got %d", len(c.Programs))
	}
	popular := 0
	for _, p := range c.Programs {
		if p.Popular {
			popular++
		}
		if p.AnnualPrice >= p.MonthlyPrice {
			t.Errorf("%s: annual per-month price %d should be below monthly %d", p.ID, p.AnnualPrice, p.MonthlyPrice)
		}
	}
	if popular != 1 {
		t.Errorf("expected exactly one popular program, got %d", popular)
	}
	if len(c.FAQ) != 10 {
		t.Errorf("expected 10 FAQ items, got %d", len(c.FAQ))
	}
	if len(c.Testimonials.Items) != 6 {
		t.Errorf("expected 6 testimonials, got %d", len(c.Testimonials.Items))
	}
	if len(c.Booking.Goals) != 6 || len(c.Booking.Timeframes) != 5 {
		t.Errorf("expected 6 goals and 5 timeframes, got %d and %d", len(c.Booking.Goals), len(c.Booking.Timeframes))
	}
	if len(c.Booking.TimeSlots) != 7 {
		t.Errorf("expected 7 time slots, got %d", len(c.Booking.TimeSlots))
	}
	if PageMeta(c, "booking").Title != "Book a Session | Leo Coach" {
		t.Errorf("unexpected booking title %q", PageMeta(c, "booking").Title)
	}
}

func TestDefault_DoesNotPanic(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected content")
	}
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("brand:\n  name: X\nherro:\n  headline: typo\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParse_RequiresBrandName(t *testing.T) {
	_, err := Parse(strings.NewReader("brand:\n  tagline: nameless\n"))
	if err == nil || !strings.Contains(err.Error(), "brand.name") {
		t.Fatalf("expected brand.name error, got %v", err)
	}
}

func TestParse_RejectsEmptyOptionValue(t *testing.T) {
	doc := "brand:\n  name: X\nbooking:\n  goals:\n    - { value: \"\", label: Blank }\n"
	if _, err := Parse(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for empty goal value")
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("brand:\n  name: Test Gym\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Brand.Name != "Test Gym" {
		t.Errorf("expected Test Gym, got %q", c.Brand.Name)
	}
	if m := PageMeta(c, "home"); m.Title != "Test Gym" {
		t.Errorf("expected fallback title, got %q", m.Title)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLegalDocs_BuiltIn(t *testing.T) {
	fsys := LegalDocs("")
	for _, doc := range []string{"privacy", "terms", "cookies", "refund"} {
		b, err := fs.ReadFile(fsys, doc+".md")
		if err != nil {
			t.Errorf("%s: %v", doc, err)
			continue
		}
		if !strings.HasPrefix(string(b), "# ") {
			t.Errorf("%s.md should start with a heading", doc)
		}
	}
}

func TestLegalDocs_Dir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "terms.md"), []byte("# Custom"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := fs.ReadFile(LegalDocs(dir), "terms.md")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "# Custom" {
		t.Errorf("expected override content, got %q", b)
	}
}
