// Package tacacs implements the tac_plus-ng configuration compiler and the
// artifact lifecycle: compiling relational policy entities into the daemon's
// textual configuration, syntax-checking artifacts with the daemon binary
// and promoting exactly one artifact to be the live configuration.
package tacacs

import (
	"strings"
)

// Node is one element of the configuration block tree. The renderer walks
// nodes in order; which nodes exist and in which order is decided entirely
// by the compiler.
type Node interface {
	node()
}

// Pair renders as "key = value" on a single line.
type Pair struct {
	Key   string
	Value string
}

// Raw renders its text verbatim, re-indented to the current nesting level.
// It carries free-form configuration option blocks and pre-formatted lines
// like "set key=value".
type Raw string

// Block renders as "<name> {", its children one level deeper, and "}".
type Block struct {
	Name     string
	Children []Node
}

func (Pair) node()   {}
func (Raw) node()    {}
func (*Block) node() {}

// NewBlock creates an empty named block.
func NewBlock(name string) *Block {
	return &Block{Name: name}
}

// Add appends children to the block and returns it for chaining.
func (b *Block) Add(children ...Node) *Block {
	b.Children = append(b.Children, children...)
	return b
}

// Empty reports whether the block has no children.
func (b *Block) Empty() bool {
	return len(b.Children) == 0
}

const indentStep = "    "

// Render serializes nodes to the daemon's brace-delimited syntax. It is a
// single recursive walk over the tree and carries no knowledge of what the
// blocks mean.
func Render(nodes []Node) string {
	var sb strings.Builder
	renderNodes(&sb, nodes, 0)

	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []Node, depth int) {
	indent := strings.Repeat(indentStep, depth)

	for _, n := range nodes {
		switch v := n.(type) {
		case Pair:
			sb.WriteString(indent)
			sb.WriteString(v.Key)
			sb.WriteString(" = ")
			sb.WriteString(v.Value)
			sb.WriteString("\n")
		case Raw:
			for _, line := range strings.Split(string(v), "\n") {
				sb.WriteString(indent)
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		case *Block:
			sb.WriteString(indent)
			sb.WriteString(v.Name)
			sb.WriteString(" {\n")
			renderNodes(sb, v.Children, depth+1)
			sb.WriteString(indent)
			sb.WriteString("}\n")
		}
	}
}
