package htmlast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/pkg/htmlast"
)

func buildTestTree() *htmlast.Node {
	// Document
	//   h1
	//     "Title"
	//   p
	//     "Hello "
	//     strong
	//       "world"
	//   <!-- note -->
	return htmlast.Build(htmlast.NewDocument(),
		htmlast.Build(htmlast.NewElement("H1"), htmlast.NewText("Title")),
		htmlast.Build(htmlast.NewElement("p"),
			htmlast.NewText("Hello "),
			htmlast.Build(htmlast.NewElement("strong"), htmlast.NewText("world")),
		),
		htmlast.NewComment(" note "),
	)
}

func TestNewElement_LowercasesTag(t *testing.T) {
	t.Parallel()

	node := htmlast.NewElement("STRONG")
	assert.Equal(t, "strong", node.Tag)
	assert.Equal(t, htmlast.NodeElement, node.Type)
}

func TestNode_IsElement(t *testing.T) {
	t.Parallel()

	para := htmlast.NewElement("p")
	text := htmlast.NewText("x")

	assert.True(t, para.IsElement())
	assert.True(t, para.IsElement("li", "p"))
	assert.False(t, para.IsElement("li"))
	assert.False(t, text.IsElement())
	assert.True(t, text.IsText())

	var nilNode *htmlast.Node
	assert.False(t, nilNode.IsElement())
	assert.False(t, nilNode.IsText())
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	img := htmlast.NewElement("img",
		htmlast.Attr{Key: "src", Val: "a.png"},
		htmlast.Attr{Key: "alt", Val: ""},
	)

	src, ok := img.Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "a.png", src)

	alt, ok := img.Attr("alt")
	assert.True(t, ok, "present but empty attribute is still present")
	assert.Empty(t, alt)

	_, ok = img.Attr("title")
	assert.False(t, ok)
	assert.Equal(t, "fallback", img.AttrOr("title", "fallback"))
}

func TestNode_HeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      string
		expected int
	}{
		{"h1", 1},
		{"h3", 3},
		{"h6", 6},
		{"h7", 0},
		{"h0", 0},
		{"hr", 0},
		{"p", 0},
		{"header", 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.tag, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, htmlast.NewElement(testCase.tag).HeadingLevel())
		})
	}

	assert.Equal(t, 0, htmlast.NewText("h1").HeadingLevel())
}

func TestAppendChild_Links(t *testing.T) {
	t.Parallel()

	parent := htmlast.NewElement("ul")
	first := htmlast.NewElement("li")
	second := htmlast.NewElement("li")

	htmlast.AppendChild(parent, first)
	htmlast.AppendChild(parent, second)

	assert.Same(t, first, parent.FirstChild)
	assert.Same(t, second, parent.LastChild)
	assert.Same(t, second, first.Next)
	assert.Same(t, first, second.Prev)
	assert.Same(t, parent, second.Parent)
	assert.Equal(t, 2, parent.ChildCount())
}

func TestAppendChild_Reparents(t *testing.T) {
	t.Parallel()

	oldParent := htmlast.NewElement("p")
	newParent := htmlast.NewElement("li")
	child := htmlast.NewText("moved")

	htmlast.AppendChild(oldParent, child)
	htmlast.AppendChild(newParent, child)

	assert.False(t, oldParent.HasChildren())
	assert.Same(t, newParent, child.Parent)
}

func TestRemoveChild_Middle(t *testing.T) {
	t.Parallel()

	parent := htmlast.NewElement("p")
	first := htmlast.NewText("a")
	middle := htmlast.NewText("b")
	last := htmlast.NewText("c")
	htmlast.Build(parent, first, middle, last)

	htmlast.RemoveChild(parent, middle)

	assert.Same(t, last, first.Next)
	assert.Same(t, first, last.Prev)
	assert.Nil(t, middle.Parent)
	assert.Equal(t, 2, parent.ChildCount())
}

func TestChildElements(t *testing.T) {
	t.Parallel()

	list := htmlast.Build(htmlast.NewElement("ul"),
		htmlast.NewText("\n"),
		htmlast.Build(htmlast.NewElement("li"), htmlast.NewText("One")),
		htmlast.NewComment("x"),
		htmlast.Build(htmlast.NewElement("li"), htmlast.NewText("Two")),
		htmlast.NewElement("span"),
	)

	items := list.ChildElements("li")
	require.Len(t, items, 2)
	assert.Equal(t, "One", htmlast.TextContent(items[0]))
	assert.Equal(t, "Two", htmlast.TextContent(items[1]))

	assert.Len(t, list.ChildElements(), 3)
	assert.Len(t, list.Children(), 5)
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	var visited []string
	err := htmlast.Walk(buildTestTree(), func(n *htmlast.Node) error {
		switch n.Type {
		case htmlast.NodeElement:
			visited = append(visited, n.Tag)
		case htmlast.NodeText:
			visited = append(visited, "#"+n.Data)
		case htmlast.NodeComment:
			visited = append(visited, "!")
		case htmlast.NodeDocument:
			visited = append(visited, "doc")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"doc", "h1", "#Title", "p", "#Hello ", "strong", "#world", "!"}, visited)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	count := 0
	err := htmlast.Walk(buildTestTree(), func(_ *htmlast.Node) error {
		count++
		if count == 3 {
			return errStop
		}
		return nil
	})

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 3, count)
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	assert.NoError(t, htmlast.Walk(nil, func(_ *htmlast.Node) error {
		return errors.New("should not be called")
	}))
}

func TestTextContent_SkipsComments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TitleHello world", htmlast.TextContent(buildTestTree()))
	assert.Empty(t, htmlast.TextContent(nil))
}

func TestFindFirstAndFindAll(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	strong := htmlast.FindFirst(doc, func(n *htmlast.Node) bool { return n.IsElement("strong") })
	require.NotNil(t, strong)
	assert.Equal(t, "world", htmlast.TextContent(strong))

	texts := htmlast.FindAll(doc, func(n *htmlast.Node) bool { return n.IsText() })
	assert.Len(t, texts, 3)

	assert.Nil(t, htmlast.FindFirst(doc, func(n *htmlast.Node) bool { return n.IsElement("img") }))
}
