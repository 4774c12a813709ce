// =============================================================================
// XML Status Summary - XML Document Tree
// =============================================================================
//
// This module parses an XML document into an in-memory tree that preserves
// document order. The extractor walks this tree to find elements by local tag
// name.
//
// TREE SHAPE:
//   - Element nodes carry a name, attributes and children.
//   - Text nodes carry character data. Adjacent character data and CDATA
//     sections are merged into a single text node.
//   - Comments and processing instructions inside elements become "other"
//     nodes. They are kept so that text on either side of them is not merged.
//
// WELL-FORMEDNESS:
//   encoding/xml is a tokenizer and accepts some inputs that are not complete
//   documents. Parse additionally rejects:
//   - documents without a root element
//   - more than one root element
//   - non-whitespace text outside the root element
//
// =============================================================================

package xmldoc

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

const byteOrderMark = "\uFEFF"

// NodeKind identifies the type of a Node.
type NodeKind int

const (
	// ElementNode is an XML element.
	ElementNode NodeKind = iota

	// TextNode is character data (including CDATA).
	TextNode

	// OtherNode is a comment or processing instruction.
	OtherNode
)

// Node is a single node of the document tree.
type Node struct {
	Kind     NodeKind
	Name     xml.Name
	Attr     []xml.Attr
	Text     string
	Children []*Node
}

// =============================================================================
// PARSING
// =============================================================================

// Parse reads a complete XML document and returns its root element.
//
// PARAMETERS:
//   - text: The document text. It must already be valid UTF-8; any encoding
//     named in the XML declaration is not applied.
//
// RETURNS:
//   - The root element node.
//   - An error describing the first well-formedness problem found.
func Parse(text string) (*Node, error) {
	text = strings.TrimPrefix(text, byteOrderMark)

	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.Strict = true
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var stack []*Node
	var root *Node

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Kind: ElementNode, Name: t.Name, Attr: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.Newf("line %d: unexpected element <%s> after the root element",
						lineOf(decoder), t.Name.Local)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			text := string(t)
			if len(stack) == 0 {
				if strings.TrimSpace(text) != "" {
					return nil, errors.Newf("line %d: text outside the root element", lineOf(decoder))
				}
				continue
			}
			if text == "" {
				continue
			}
			stack[len(stack)-1].appendText(text)

		case xml.Comment, xml.ProcInst:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Node{Kind: OtherNode})
			}
		}
	}

	if len(stack) > 0 {
		return nil, errors.Newf("unexpected end of document: element <%s> is not closed",
			stack[len(stack)-1].Name.Local)
	}
	if root == nil {
		return nil, errors.New("document has no root element")
	}

	return root, nil
}

// appendText adds character data to n, merging it with a trailing text node.
func (n *Node) appendText(text string) {
	if last := len(n.Children) - 1; last >= 0 && n.Children[last].Kind == TextNode {
		n.Children[last].Text += text
		return
	}
	n.Children = append(n.Children, &Node{Kind: TextNode, Text: text})
}

func lineOf(d *xml.Decoder) int {
	line, _ := d.InputPos()
	return line
}

// =============================================================================
// TRAVERSAL
// =============================================================================

// Walk visits n and all of its descendants in document order (depth-first,
// pre-order). Walking stops early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// HasTagName reports whether n is an element with the given local name.
// The namespace is ignored and the comparison is case-sensitive.
func (n *Node) HasTagName(local string) bool {
	return n.Kind == ElementNode && n.Name.Local == local
}

// FindAll returns every element in n's subtree (n included) with the given
// local name, in document order.
func (n *Node) FindAll(local string) []*Node {
	var found []*Node
	n.Walk(func(node *Node) bool {
		if node.HasTagName(local) {
			found = append(found, node)
		}
		return true
	})
	return found
}

// Find returns the first element in n's subtree (n included) with the given
// local name, or nil.
func (n *Node) Find(local string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.HasTagName(local) {
			found = node
			return false
		}
		return true
	})
	return found
}

// DirectText returns the text of n's first child when that child is a text node.
// The boolean is false when n has no children or its first child is not text.
func (n *Node) DirectText() (string, bool) {
	if len(n.Children) == 0 || n.Children[0].Kind != TextNode {
		return "", false
	}
	return n.Children[0].Text, true
}
