package prompt

import (
	"strings"
	"testing"
)

func TestBuildConceptPrompt(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantSections []string
		wantTopic    string
	}{
		{
			name:         "single section with residual topic",
			text:         "Explain pseudocode for stacks",
			wantSections: []string{"Pseudocode"},
			wantTopic:    "stacks",
		},
		{
			name:         "union of matched sections in table order",
			text:         "advantages and disadvantages of heaps",
			wantSections: []string{"Advantages", "Disadvantages"},
			wantTopic:    "heaps",
		},
		{
			name: "no match requests all sections",
			text: "Tell me about AVL rotations",
			wantSections: []string{
				"Introduction", "Advantages", "Disadvantages",
				"Pseudocode", "Applications", "Examples",
			},
			wantTopic: "AVL rotations",
		},
		{
			name:         "empty residual falls back to placeholder",
			text:         "pseudocode",
			wantSections: []string{"Pseudocode"},
			wantTopic:    "this concept",
		},
		{
			name:         "synonyms match their section",
			text:         "pros and cons of hash tables",
			wantSections: []string{"Advantages", "Disadvantages"},
			wantTopic:    "hash tables",
		},
		{
			name:         "punctuation stripped from topic",
			text:         "Examples: b-trees!",
			wantSections: []string{"Examples"},
			wantTopic:    "btrees",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildConceptPrompt(tt.text)

			expected := "You are a helpful DSA tutor. Explain the concept \"" + tt.wantTopic +
				"\" with focus on:\n" + strings.Join(tt.wantSections, "\n")
			if got != expected {
				t.Errorf("BuildConceptPrompt(%q) =\n%q\nexpected\n%q", tt.text, got, expected)
			}
		})
	}
}

func TestBuildExecutionPrompt(t *testing.T) {
	seven := 7
	req := &OperationRequest{
		Operation: "Binary Search",
		Array:     []float64{3, 7, 9, 12},
		Target:    &seven,
	}

	got := BuildExecutionPrompt(req)
	expected := "You are a helpful DSA tutor. Trace the Binary Search algorithm step by step" +
		" on the array [3, 7, 9, 12], looking for the value 7." +
		" Narrate every iteration: which elements are compared or moved," +
		" the state of the array afterwards, and why the step happens."
	if got != expected {
		t.Errorf("BuildExecutionPrompt() =\n%q\nexpected\n%q", got, expected)
	}
}

func TestBuildExecutionPromptWithoutArrayOrTarget(t *testing.T) {
	got := BuildExecutionPrompt(&OperationRequest{Operation: "Merge Sort"})

	if strings.Contains(got, "array [") {
		t.Errorf("prompt mentions an array that was not supplied: %q", got)
	}
	if strings.Contains(got, "looking for the value") {
		t.Errorf("prompt mentions a target that was not supplied: %q", got)
	}
	if !strings.Contains(got, "Trace the Merge Sort algorithm") {
		t.Errorf("prompt missing operation name: %q", got)
	}
}

func TestComposeOperationWinsOverConcept(t *testing.T) {
	got := Compose("binary search advantages in [1,2,3]")

	if !strings.Contains(got, "Trace the Binary Search algorithm") {
		t.Errorf("expected execution prompt, got %q", got)
	}
	if strings.Contains(got, "with focus on") {
		t.Errorf("concept sections leaked into an operation prompt: %q", got)
	}
}

func TestComposeFallsBackToConcept(t *testing.T) {
	got := Compose("introduction to graphs")

	if !strings.Contains(got, "with focus on:\nIntroduction") {
		t.Errorf("expected concept prompt with Introduction section, got %q", got)
	}
}
