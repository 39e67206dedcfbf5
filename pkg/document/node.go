// Package document provides the immutable line-indexed view of a parsed
// Markdown document that rules and the suppression processor query.
package document

// NodeKind classifies the type of a structural node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	KindDocument NodeKind = iota

	// Block-level nodes.
	KindParagraph
	KindHeading
	KindList
	KindListItem
	KindBlockquote
	KindCodeBlock
	KindThematicBreak
	KindHTMLBlock
	KindTable

	// Inline-level nodes.
	KindText
	KindEmphasis
	KindStrong
	KindCodeSpan
	KindLink
	KindImage
	KindHTMLInline

	// Fallback for unrecognized content.
	KindRaw
)

// ListInfo holds attributes for list nodes.
type ListInfo struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// Marker is the bullet character for unordered lists ("-", "+", "*").
	Marker string

	// Start is the starting number for ordered lists.
	Start int

	// Tight is true if no blank lines separate the items.
	Tight bool
}

// CodeInfo holds attributes for code block nodes.
type CodeInfo struct {
	// Fenced is true for fenced blocks, false for indented ones.
	Fenced bool

	// FenceChar is the fence character ('`' or '~') for fenced blocks.
	FenceChar byte

	// FenceLength is the number of fence characters.
	FenceLength int

	// Info is the info string (language identifier, etc.).
	Info string
}

// LinkInfo holds attributes for link and image nodes.
type LinkInfo struct {
	// Destination is the link URL.
	Destination string

	// Title is the optional link title.
	Title string

	// AutoLink is true for <https://...> style links.
	AutoLink bool
}

// Node is a single structural node sourced from the external parse tree.
// Nodes form a tree with parent/child/sibling relationships and carry a
// byte range into the original content.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Start and End delimit the node's byte range in the original
	// content (start inclusive, end exclusive). Block node ranges are
	// normalized to whole lines. Both are -1 for synthetic nodes.
	Start int
	End   int

	// HeadingLevel is the level (1-6) for KindHeading nodes.
	HeadingLevel int

	// List holds list attributes for KindList nodes.
	List *ListInfo

	// Code holds code block attributes for KindCodeBlock nodes.
	Code *CodeInfo

	// Link holds link attributes for KindLink and KindImage nodes.
	Link *LinkInfo

	// Text holds raw text for KindText and KindCodeSpan nodes.
	Text []byte

	// Ext holds extension-specific attributes (e.g. GFM table cells).
	Ext map[string]any
}

// NewNode creates a node of the given kind with an unset byte range.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, Start: -1, End: -1}
}

// AppendChild adds child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild
	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// HasRange returns true if the node carries a valid byte range.
func (n *Node) HasRange() bool {
	return n.Start >= 0 && n.End >= n.Start
}

// IsBlock returns true for block-level node kinds.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case KindDocument, KindParagraph, KindHeading, KindList, KindListItem,
		KindBlockquote, KindCodeBlock, KindThematicBreak, KindHTMLBlock, KindTable:
		return true
	default:
		return false
	}
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}
