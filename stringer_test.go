package parsey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextString(t *testing.T) {
	assert.Equal(t, `"a b"`, Text("a b").String())
}

func TestBranchString(t *testing.T) {
	branch := &Branch{Name: "bracket", Children: []Node{
		&Branch{Name: "consonant", Children: []Node{Text("t")}},
		&Branch{Name: "vowel", Children: []Node{Text("e")}},
	}}
	assert.Equal(t, `(bracket (consonant "t") (vowel "e"))`, branch.String())
}

func TestBranchStringWithOption(t *testing.T) {
	branch := &Branch{Name: "item", Children: []Node{Text("a")}, Option: 42}
	assert.Equal(t, `(item=42 "a")`, branch.String())
}
