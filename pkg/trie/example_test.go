package trie_test

import (
	"fmt"

	"github.com/matzehuels/wordtrie/pkg/trie"
)

func Example() {
	t := trie.New()
	t.Insert("cat", "car", "cart", "dog")

	fmt.Println(t.SearchPrefix("ca"))
	fmt.Println(t.SearchPrefix("do"))
	fmt.Println(t.SearchPrefix("z"))
	fmt.Println(t.SearchPrefix(""))
	// Output:
	// [cat car cart]
	// [dog]
	// []
	// [cat car cart dog]
}

func ExampleTrie_Walk() {
	t := trie.New()
	t.Insert("to", "tea", "ten")

	t.Walk("t", func(v trie.Visit) bool {
		mark := ""
		if v.Terminal {
			mark = " *"
		}
		fmt.Printf("%d %s%s\n", v.Depth, v.Path, mark)
		return true
	})
	// Output:
	// 0 t
	// 1 to *
	// 1 te
	// 2 tea *
	// 2 ten *
}
