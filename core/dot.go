// Package core: human-readable DOT dump for external visualization.
//
// The output is graphviz-compatible and meant for graph viewers; it is
// not a persistence format and nothing in this module parses it back.

package core

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT renders the graph to w in DOT form. Node labels come from
// the value's %v formatting; edge labels from the payload's, omitted
// for payload-free (None) graphs.
func (g *Graph[N, P]) WriteDOT(w io.Writer) error {
	keyword, arrow := "digraph", "->"
	if !g.directed {
		keyword, arrow = "graph", "--"
	}
	if _, err := fmt.Fprintf(w, "%s G {\n", keyword); err != nil {
		return err
	}
	for i := range g.nodes {
		if !g.nodes[i].live {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s;\n", dotQuote(g.nodes[i].val)); err != nil {
			return err
		}
	}
	for i := range g.edges {
		if !g.edges[i].live {
			continue
		}
		e := g.edges[i].val
		label := ""
		if _, bare := any(e.Payload).(None); !bare {
			label = fmt.Sprintf(" [label=%s]", dotQuote(e.Payload))
		}
		if _, err := fmt.Fprintf(w, "  %s %s %s%s;\n",
			dotQuote(e.From), arrow, dotQuote(e.To), label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}

// DOT renders the graph to a string; see WriteDOT.
func (g *Graph[N, P]) DOT() string {
	var sb strings.Builder
	g.WriteDOT(&sb) // strings.Builder never errors

	return sb.String()
}

// String implements fmt.Stringer with the DOT rendering.
func (g *Graph[N, P]) String() string { return g.DOT() }

// dotQuote formats a value with %v and escapes it as a DOT quoted id.
func dotQuote(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}
