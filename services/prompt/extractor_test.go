package prompt

import (
	"reflect"
	"testing"
)

func TestExtractOperation(t *testing.T) {
	target := func(v int) *int { return &v }

	tests := []struct {
		name     string
		text     string
		expected *OperationRequest
	}{
		{
			name: "full trace request",
			text: "Do a binary search to find 7 in [3,7,9,12]",
			expected: &OperationRequest{
				Operation: "Binary Search",
				Array:     []float64{3, 7, 9, 12},
				Target:    target(7),
			},
		},
		{
			name: "operation without array or target",
			text: "show me bubble sort",
			expected: &OperationRequest{
				Operation: "Bubble Sort",
			},
		},
		{
			name: "table order wins over text order",
			text: "compare merge sort with bubble sort",
			expected: &OperationRequest{
				Operation: "Bubble Sort",
			},
		},
		{
			name: "malformed token rejects whole array",
			text: "quick sort [1, two, 3]",
			expected: &OperationRequest{
				Operation: "Quick Sort",
			},
		},
		{
			name: "empty brackets",
			text: "heap sort []",
			expected: &OperationRequest{
				Operation: "Heap Sort",
			},
		},
		{
			name: "negative target",
			text: "linear search to FIND -5 in [-5, 0, 5]",
			expected: &OperationRequest{
				Operation: "Linear Search",
				Array:     []float64{-5, 0, 5},
				Target:    target(-5),
			},
		},
		{
			name: "floats and whitespace",
			text: "insertion sort on [ 2.5 , 1 , 0.75 ]",
			expected: &OperationRequest{
				Operation: "Insertion Sort",
				Array:     []float64{2.5, 1, 0.75},
			},
		},
		{
			name:     "bracketed array without operation",
			text:     "what do you make of [1,2,3]?",
			expected: nil,
		},
		{
			name:     "plain question",
			text:     "explain hash tables",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractOperation(tt.text)

			if tt.expected == nil {
				if ok {
					t.Fatalf("ExtractOperation(%q) = %+v, expected none", tt.text, got)
				}
				return
			}

			if !ok {
				t.Fatalf("ExtractOperation(%q) returned none, expected %+v", tt.text, tt.expected)
			}
			if got.Operation != tt.expected.Operation {
				t.Errorf("operation = %q, expected %q", got.Operation, tt.expected.Operation)
			}
			if !reflect.DeepEqual(got.Array, tt.expected.Array) {
				t.Errorf("array = %v, expected %v", got.Array, tt.expected.Array)
			}
			switch {
			case got.Target == nil && tt.expected.Target != nil:
				t.Errorf("target = nil, expected %d", *tt.expected.Target)
			case got.Target != nil && tt.expected.Target == nil:
				t.Errorf("target = %d, expected nil", *got.Target)
			case got.Target != nil && *got.Target != *tt.expected.Target:
				t.Errorf("target = %d, expected %d", *got.Target, *tt.expected.Target)
			}
		})
	}
}

func TestExtractOperationCoversEveryPhrase(t *testing.T) {
	for _, op := range operationPhrases {
		req, ok := ExtractOperation("please trace " + op.phrase + " for me")
		if !ok {
			t.Errorf("phrase %q was not recognized", op.phrase)
			continue
		}
		if req.Operation != op.label {
			t.Errorf("phrase %q yielded label %q, expected %q", op.phrase, req.Operation, op.label)
		}
	}
}
