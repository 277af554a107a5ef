package store

import "testing"

func TestMatchValue(t *testing.T) {
	tests := []struct {
		name  string
		field any
		want  any
		match bool
	}{
		{"bool equal", true, true, true},
		{"bool unequal", false, true, false},
		{"bool against non-bool field", "yes", true, false},
		{"exact string", "office_desk", "office_desk", true},
		{"substring case-insensitive", "Standing Desk", "desk", true},
		{"substring no hit", "Armchair", "desk", false},
		{"value substring of field only", "desk", "Standing Desk", false},
		{"list membership", []string{"Oak", "Walnut"}, "Walnut", true},
		{"list no membership", []string{"Oak", "Walnut"}, "Black", false},
		{"numeric equality", 2500.0, 2500, true},
		{"numeric inequality", 2500.0, 100, false},
		{"nil constraint skipped", "anything", nil, true},
		{"empty string constraint skipped", "anything", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchValue(tt.field, tt.want); got != tt.match {
				t.Errorf("matchValue(%v, %v) = %v, want %v", tt.field, tt.want, got, tt.match)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	if !containsFold("Standing Desk", "DESK") {
		t.Error("expected case-insensitive containment to match")
	}
	if containsFold("Sofa", "desk") {
		t.Error("unexpected match")
	}
}

func TestSkippedConstraint(t *testing.T) {
	if !skippedConstraint(nil) || !skippedConstraint("") {
		t.Error("nil and empty string constraints must be skipped")
	}
	if skippedConstraint(false) {
		t.Error("false is a real constraint, not a skipped one")
	}
	if skippedConstraint(0) {
		t.Error("zero is a real constraint, not a skipped one")
	}
}

func TestContainsElement(t *testing.T) {
	if !containsElement([]string{"Black", "Gray"}, "Gray") {
		t.Error("expected membership")
	}
	if containsElement([]string{}, "Gray") {
		t.Error("empty list must not match")
	}
}
