package profile

import "testing"

func TestMergeKeepsBaseForEmptyUpdate(t *testing.T) {
	base := Profile{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Skills:  []string{"Python"},
		Summary: "Engineer",
	}

	merged := Merge(base, Profile{})

	if merged.Name != base.Name || merged.Email != base.Email || merged.Summary != base.Summary {
		t.Fatalf("empty update must not change base fields: %+v", merged)
	}
	if len(merged.Skills) != 1 || merged.Skills[0] != "Python" {
		t.Fatalf("empty update must not change base slices: %v", merged.Skills)
	}
}

func TestMergeOverwritesNonEmptyFields(t *testing.T) {
	base := Profile{Name: "Ada Lovelace", Email: "ada@example.com", Location: "London"}
	update := Profile{Email: "ada@newmail.com", Phone: "+1 555 0100"}

	merged := Merge(base, update)

	if merged.Name != "Ada Lovelace" {
		t.Fatalf("Name = %q, want base value kept", merged.Name)
	}
	if merged.Email != "ada@newmail.com" {
		t.Fatalf("Email = %q, want updated value", merged.Email)
	}
	if merged.Phone != "+1 555 0100" {
		t.Fatalf("Phone = %q, want updated value", merged.Phone)
	}
	if merged.Location != "London" {
		t.Fatalf("Location = %q, want base value kept", merged.Location)
	}
}

func TestMergeWhitespaceDoesNotOverwrite(t *testing.T) {
	base := Profile{Name: "Ada Lovelace"}
	merged := Merge(base, Profile{Name: "   "})

	if merged.Name != "Ada Lovelace" {
		t.Fatalf("whitespace-only update overwrote Name: %q", merged.Name)
	}
}

func TestMergeReplacesSlicesEntirely(t *testing.T) {
	base := Profile{Skills: []string{"Python", "SQL"}}
	update := Profile{Skills: []string{"Go"}}

	merged := Merge(base, update)

	if len(merged.Skills) != 1 || merged.Skills[0] != "Go" {
		t.Fatalf("Skills = %v, want full replacement with [Go]", merged.Skills)
	}
}

func TestMergeDoesNotAliasUpdateSlices(t *testing.T) {
	update := Profile{Skills: []string{"Go"}}
	merged := Merge(Profile{}, update)

	update.Skills[0] = "changed"
	if merged.Skills[0] != "Go" {
		t.Fatalf("merged profile aliases the update slice: %v", merged.Skills)
	}
}
