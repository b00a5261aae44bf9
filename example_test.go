package parsey_test

import (
	"fmt"

	parsey "github.com/ScrimpyCat/Parsey"
)

func ExampleParse() {
	rules := parsey.RuleSet{
		{Name: "bracket", Matcher: parsey.MustPattern(`\((.*?)\)`)},
		{Name: "vowel", Matcher: parsey.MustPattern(`^[aeiou]+`)},
		{Name: "consonant", Matcher: parsey.MustPattern(`^[^aeiou]+`)},
	}
	nodes, err := parsey.Parse("(test)", rules)
	if err != nil {
		panic(err)
	}
	for _, node := range nodes {
		fmt.Println(node)
	}
	// Output: (bracket (consonant "t") (vowel "e") (consonant "st"))
}

func ExampleRule_ignore() {
	rules := parsey.RuleSet{
		{Name: "space", Matcher: parsey.MustPattern(`^\s+`), Ignore: true},
		{Name: "word", Matcher: parsey.MustPattern(`^\w+`)},
	}
	nodes, err := parsey.Parse("two words", rules)
	if err != nil {
		panic(err)
	}
	for _, node := range nodes {
		fmt.Println(node)
	}
	// Output:
	// (word "two")
	// (word "words")
}
