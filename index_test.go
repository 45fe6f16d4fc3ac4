package syscolor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexNames(t *testing.T) {
	for _, index := range Indices() {
		name := index.String()
		assert.NotContains(t, name, "Index(")
		parsed, ok := ParseIndex(strings.ToLower(name))
		assert.True(t, ok, name)
		assert.Equal(t, index, parsed)
	}
	_, ok := ParseIndex("NotAColor")
	assert.False(t, ok)
	assert.Equal(t, "Index(99)", Index(99).String())
	assert.Equal(t, "Index(-1)", Index(-1).String())
}

func TestNativeMapping(t *testing.T) {
	// Spot checks against winuser.h.
	assert.Equal(t, int32(0), colors[ScrollBar].native)
	assert.Equal(t, int32(2), colors[ActiveCaption].native)
	assert.Equal(t, int32(8), colors[WindowText].native)
	assert.Equal(t, int32(15), colors[ButtonFace].native)
	assert.Equal(t, int32(21), colors[ThreeDDarkShadow].native)
	assert.Equal(t, int32(28), colors[GradientInactiveCaption].native)

	seen := make(map[int32]string)
	for i := range colors {
		e := &colors[i]
		if prev, dup := seen[e.native]; dup {
			t.Fatalf("native index %d mapped by both %s and %s", e.native, prev, e.name)
		}
		seen[e.native] = e.name
	}
}

func TestIndicesIsFresh(t *testing.T) {
	a := Indices()
	a[0] = Index(999)
	b := Indices()
	assert.Equal(t, ThreeDDarkShadow, b[0])
	assert.Len(t, b, int(numIndices))
}
