package suggest_test

import (
	"fmt"

	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/bastiangx/wordtrie/pkg/trie"
)

func Example() {
	t := trie.New()
	for _, w := range []string{"cat", "cap", "car", "dog"} {
		_ = t.Insert(w)
	}
	m := suggest.NewMatcher(t)

	for w := range m.Correct("cat", 1) {
		fmt.Println(w)
	}
	fmt.Println(m.CompleteAll("", 0))

	// Output:
	// cap
	// car
	// cat
	// [cap car cat dog]
}

func ExampleMatcher_Matches() {
	t := trie.New()
	_ = t.Insert("hello")
	_ = t.Insert("hallo")
	_ = t.Insert("hallo")
	m := suggest.NewMatcher(t)

	for hit := range m.Matches("hullo", 1) {
		fmt.Println(hit.Word, hit.Distance, hit.Count)
	}

	// Output:
	// hallo 1 2
	// hello 1 1
}
