package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	parsey "github.com/ScrimpyCat/Parsey"
	"github.com/ScrimpyCat/Parsey/ruledef"
)

var (
	rulesFile = kingpin.Flag("rules", "Rule definition file (.toml, .yaml or .yml).").Short('r').Required().String()
	jsonOut   = kingpin.Flag("json", "Print the parse tree as JSON.").Bool()
	traceOut  = kingpin.Flag("trace", "Trace the parse to stderr.").Bool()
	inputFile = kingpin.Arg("input", "Input file (defaults to stdin).").String()
)

func main() {
	kingpin.CommandLine.Help = `Parse text into a tree using a declarative rule set.

Rules are tried in file order at each input position; the first match wins
and its capture is parsed recursively. Unmatched text survives as literals.`
	kingpin.Parse()

	data, err := os.ReadFile(*rulesFile)
	kingpin.FatalIfError(err, "")

	var rules parsey.RuleSet
	switch strings.ToLower(filepath.Ext(*rulesFile)) {
	case ".yaml", ".yml":
		rules, err = ruledef.FromYAML(data)
	default:
		rules, err = ruledef.FromTOML(data)
	}
	kingpin.FatalIfError(err, "")

	input := []byte{}
	if *inputFile != "" {
		input, err = os.ReadFile(*inputFile)
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	kingpin.FatalIfError(err, "")

	options := []parsey.ParseOption{}
	if *traceOut {
		options = append(options, parsey.Trace(os.Stderr))
	}
	nodes, err := parsey.Parse(string(input), rules, options...)
	kingpin.FatalIfError(err, "")

	if *jsonOut {
		out, err := json.MarshalIndent(nodes, "", "  ")
		kingpin.FatalIfError(err, "")
		fmt.Println(string(out))
	} else {
		repr.Println(nodes)
	}
}
