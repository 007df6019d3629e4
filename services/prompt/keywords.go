package prompt

// Every fixed table the classifier, extractor, and composer work from
// lives here so the three stay in sync and tests can enumerate them.

// domainKeywords gates every model call. Matching is lower-cased
// substring containment with no tokenization, so "heapdump" passes the
// gate; that is the long-standing production behavior and is kept as is.
var domainKeywords = []string{
	"sort", "stack", "queue", "tree", "graph", "heap", "hash",
	"search", "traversal", "linked list", "recursion", "algorithm",
	"binary", "complexity", "heap sort", "dsa", "data structure",
}

type operationPhrase struct {
	phrase string
	label  string
}

// operationPhrases is scanned in this order and the first phrase found
// wins, even when a message names several operations.
var operationPhrases = []operationPhrase{
	{"linear search", "Linear Search"},
	{"binary search", "Binary Search"},
	{"bubble sort", "Bubble Sort"},
	{"selection sort", "Selection Sort"},
	{"insertion sort", "Insertion Sort"},
	{"quick sort", "Quick Sort"},
	{"merge sort", "Merge Sort"},
	{"heap sort", "Heap Sort"},
}

type promptSection struct {
	name     string
	keywords []string
}

// promptSections drives concept-prompt section selection. Table order is
// the order sections appear in the final prompt. Within a row, longer
// keywords come first so stripping removes the whole word.
var promptSections = []promptSection{
	{"Introduction", []string{"introduction", "intro"}},
	{"Advantages", []string{"advantages", "pros", "benefits"}},
	{"Disadvantages", []string{"disadvantages", "cons", "limitations"}},
	{"Pseudocode", []string{"pseudocode", "pseudo code", "algorithm"}},
	{"Applications", []string{"applications", "uses", "use cases"}},
	{"Examples", []string{"examples", "example", "sample"}},
}

// topicStopwords are filler words dropped when deriving the residual
// topic from a message, so "Explain pseudocode for stacks" yields the
// topic "stacks".
var topicStopwords = map[string]bool{
	"a": true, "about": true, "an": true, "and": true, "are": true,
	"describe": true, "explain": true, "for": true, "give": true,
	"in": true, "is": true, "me": true, "of": true, "on": true,
	"please": true, "tell": true, "the": true, "to": true,
	"what": true, "with": true,
}
