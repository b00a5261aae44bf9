package parsey

import (
	"bytes"
	"fmt"
	"strconv"
)

func (t Text) String() string { return strconv.Quote(string(t)) }

func (b *Branch) String() string {
	v := &stringerVisitor{}
	v.visit(b)
	return v.String()
}

type stringerVisitor struct {
	bytes.Buffer
}

func (s *stringerVisitor) visit(n Node) {
	switch n := n.(type) {
	case Text:
		fmt.Fprintf(s, "%q", string(n))

	case *Branch:
		fmt.Fprintf(s, "(%s", n.Name)
		if n.Option != nil {
			fmt.Fprintf(s, "=%v", n.Option)
		}
		for _, child := range n.Children {
			fmt.Fprint(s, " ")
			s.visit(child)
		}
		fmt.Fprint(s, ")")
	}
}
