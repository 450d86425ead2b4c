package domain

import (
	"errors"
	"testing"
)

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryPerson, true},
		{CategoryIdea, true},
		{CategoryInterview, true},
		{CategoryAdmin, true},
		{CategoryLinkedIn, true},
		{Category("Groceries"), false},
		{Category(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()
			if got := tt.category.IsValid(); got != tt.want {
				t.Errorf("Category(%q).IsValid() = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestParseCategory_Aliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Category
	}{
		{"a", CategoryAdmin},
		{"ADMIN", CategoryAdmin},
		{"ppl", CategoryPerson},
		{"people", CategoryPerson},
		{" Person ", CategoryPerson},
		{"i", CategoryIdea},
		{"ideas", CategoryIdea},
		{"int", CategoryInterview},
		{"li", CategoryLinkedIn},
		{"LinkedIn", CategoryLinkedIn},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCategory(tt.input)
			if err != nil {
				t.Fatalf("ParseCategory(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ParseCategory("groceries")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestDigestOrder_CoversEveryCategory(t *testing.T) {
	t.Parallel()

	seen := map[Category]bool{}
	for _, c := range DigestOrder {
		if seen[c] {
			t.Errorf("duplicate category %q in DigestOrder", c)
		}
		seen[c] = true
		if _, err := SchemaFor(c); err != nil {
			t.Errorf("SchemaFor(%q): %v", c, err)
		}
	}
	if len(seen) != 5 {
		t.Errorf("DigestOrder has %d categories, want 5", len(seen))
	}
}

func TestSchemas_CommonColumns(t *testing.T) {
	t.Parallel()

	for _, c := range DigestOrder {
		s, _ := SchemaFor(c)
		n := len(s.Columns)
		if s.Columns[n-2] != "message_id" || s.Columns[n-1] != "is_active" {
			t.Errorf("%s schema must end with message_id, is_active: %v", c, s.Columns)
		}
	}
}
