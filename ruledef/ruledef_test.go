package ruledef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parsey "github.com/ScrimpyCat/Parsey"
)

const bracketTOML = `
[[rules]]
name = "bracket"
pattern = '\((.*?)\)'

[[rules]]
name = "vowel"
pattern = '^[aeiou]+'

[[rules]]
name = "consonant"
pattern = '^[^aeiou]+'
`

const bracketYAML = `
rules:
  - name: bracket
    pattern: \((.*?)\)
  - name: vowel
    pattern: ^[aeiou]+
  - name: consonant
    pattern: ^[^aeiou]+
`

func testBracketRules(t *testing.T, rules parsey.RuleSet) {
	t.Helper()
	nodes, err := parsey.Parse("(test)", rules)
	require.NoError(t, err)
	assert.Equal(t, []parsey.Node{
		&parsey.Branch{Name: "bracket", Children: []parsey.Node{
			&parsey.Branch{Name: "consonant", Children: []parsey.Node{parsey.Text("t")}},
			&parsey.Branch{Name: "vowel", Children: []parsey.Node{parsey.Text("e")}},
			&parsey.Branch{Name: "consonant", Children: []parsey.Node{parsey.Text("st")}},
		}},
	}, nodes)
}

func TestFromTOML(t *testing.T) {
	rules, err := FromTOML([]byte(bracketTOML))
	require.NoError(t, err)
	require.Len(t, rules, 3)
	testBracketRules(t, rules)
}

func TestFromYAML(t *testing.T) {
	rules, err := FromYAML([]byte(bracketYAML))
	require.NoError(t, err)
	require.Len(t, rules, 3)
	testBracketRules(t, rules)
}

func TestRuleModifiers(t *testing.T) {
	rules, err := FromYAML([]byte(`
rules:
  - name: space
    pattern: ^\s+
    ignore: true
  - name: quote
    pattern: ^"(.*?)"
    skip: true
  - name: word
    pattern: ^(\w+)
    capture: 1
    format: redacted
    option: secret
`))
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.True(t, rules[0].Ignore)
	assert.True(t, rules[1].Skip)
	require.NotNil(t, rules[2].Capture)
	assert.Equal(t, 1, *rules[2].Capture)
	assert.Equal(t, "redacted", rules[2].Format.Format("hello"))
	assert.Equal(t, "secret", rules[2].Option.Option("hello", nil))

	nodes, err := parsey.Parse(`a "b"`, rules)
	require.NoError(t, err)
	assert.Equal(t, []parsey.Node{
		&parsey.Branch{Name: "word", Children: []parsey.Node{parsey.Text("redacted")}, Option: "secret"},
		&parsey.Branch{Name: "word", Children: []parsey.Node{parsey.Text("redacted")}, Option: "secret"},
	}, nodes)
}

func TestExclusions(t *testing.T) {
	rules, err := FromTOML([]byte(`
[[rules]]
name = "wrap"
pattern = '^\[(.*)\]'

  [[rules.exclude]]
  name = "item"
  option = "b"

[[rules]]
name = "item"
pattern = '^a'
option = "a"

[[rules]]
name = "item"
pattern = '^b'
option = "b"
`))
	require.NoError(t, err)
	require.Len(t, rules, 3)
	require.Len(t, rules[0].Exclude, 1)
	assert.Equal(t, parsey.ExcludeOption{Name: "item", Option: "b"}, rules[0].Exclude[0])

	nodes, err := parsey.Parse("[ab]", rules)
	require.NoError(t, err)
	assert.Equal(t, []parsey.Node{
		&parsey.Branch{Name: "wrap", Children: []parsey.Node{
			&parsey.Branch{Name: "item", Children: []parsey.Node{parsey.Text("a")}, Option: "a"},
			parsey.Text("b"),
		}},
	}, nodes)
}

func TestEmptyExclude(t *testing.T) {
	rules, err := FromYAML([]byte(`
rules:
  - name: wrap
    pattern: ^\((.*)\)
    exclude: []
`))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.NotNil(t, rules[0].Exclude)
	assert.Empty(t, rules[0].Exclude)
}

func TestNestedDefinitions(t *testing.T) {
	rules, err := FromYAML([]byte(`
rules:
  - name: brace
    pattern: ^\{(.*)\}
    include:
      - name: num
        pattern: ^[0-9]+
  - name: raw
    pattern: ^r\((.*?)\)
    rules: []
`))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	require.Len(t, rules[0].Include, 1)
	assert.Equal(t, "num", rules[0].Include[0].Name)

	nodes, err := parsey.Parse("{12}", rules)
	require.NoError(t, err)
	assert.Equal(t, []parsey.Node{
		&parsey.Branch{Name: "brace", Children: []parsey.Node{
			&parsey.Branch{Name: "num", Children: []parsey.Node{parsey.Text("12")}},
		}},
	}, nodes)
}

func TestErrors(t *testing.T) {
	_, err := FromYAML([]byte("rules:\n  - pattern: ^a\n"))
	assert.EqualError(t, err, "rule with no name")

	_, err = FromYAML([]byte("rules:\n  - name: a\n"))
	assert.EqualError(t, err, `rule "a": missing pattern`)

	_, err = FromYAML([]byte("rules:\n  - name: a\n    pattern: '('\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "a"`)

	assert.Panics(t, func() { Must(FromYAML([]byte("rules:\n  - pattern: ^a\n"))) })
}
