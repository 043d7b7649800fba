package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_SafeLiteralsStayBare(t *testing.T) {
	assert.Equal(t, "App_iOS", quote("App_iOS"))
	assert.Equal(t, "Sources/App/Bridge.swift", quote("Sources/App/Bridge.swift"))
	assert.Equal(t, "4B4C00000000000000000001", quote("4B4C00000000000000000001"))
}

func TestQuote_EscapesUnsafeContent(t *testing.T) {
	assert.Equal(t, `"My App"`, quote("My App"))
	assert.Equal(t, `"$(TARGET_NAME)"`, quote("$(TARGET_NAME)"))
	assert.Equal(t, `"say \"hi\""`, quote(`say "hi"`))
	assert.Equal(t, `"C:\\dist"`, quote(`C:\dist`))
	assert.Equal(t, `"line\nbreak"`, quote("line\nbreak"))
	assert.Equal(t, `""`, quote(""))
}

func TestSerialize_SectionsSortedAndDelimited(t *testing.T) {
	var g Graph
	g.Add("4B4C00000000000000000002", "b", "PBXGroup").
		Set("children", List{}).
		Set("sourceTree", Str("<group>"))
	g.Add("4B4C00000000000000000001", "Project object", "PBXProject").
		Set("mainGroup", Ref{ID: "4B4C00000000000000000002"})
	g.Add("4B4C00000000000000000003", "a.swift", "PBXFileReference").
		Set("path", Str("a.swift"))
	g.SetRoot(Ref{"4B4C00000000000000000001", "Project object"})

	out := g.Serialize()

	assert.True(t, strings.HasPrefix(out, "// !$*UTF8*$!\n"))
	// Sections appear in lexicographic kind order.
	fileRef := strings.Index(out, "/* Begin PBXFileReference section */")
	group := strings.Index(out, "/* Begin PBXGroup section */")
	proj := strings.Index(out, "/* Begin PBXProject section */")
	assert.Greater(t, fileRef, 0)
	assert.Greater(t, group, fileRef)
	assert.Greater(t, proj, group)
	assert.Contains(t, out, "rootObject = 4B4C00000000000000000001 /* Project object */;")
}

func TestSerialize_InlineKinds(t *testing.T) {
	var g Graph
	g.Add("4B4C00000000000000000001", "a.swift", "PBXFileReference").
		Set("path", Str("a.swift")).
		Set("sourceTree", Str("<group>"))
	g.SetRoot(Ref{ID: "4B4C00000000000000000001"})

	out := g.Serialize()

	assert.Contains(t, out, `{isa = PBXFileReference; path = a.swift; sourceTree = "<group>"; }`)
}

func TestSerialize_ObjectsOrderedByIdentifier(t *testing.T) {
	var g Graph
	g.Add("4B4C00000000000000000002", "second", "PBXFileReference").Set("path", Str("b"))
	g.Add("4B4C00000000000000000001", "first", "PBXFileReference").Set("path", Str("a"))
	g.SetRoot(Ref{ID: "4B4C00000000000000000001"})

	out := g.Serialize()

	first := strings.Index(out, "4B4C00000000000000000001 /* first */")
	second := strings.Index(out, "4B4C00000000000000000002 /* second */")
	assert.Greater(t, first, 0)
	assert.Greater(t, second, first)
}
