package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_SetEscapesOnce(t *testing.T) {
	attrs := NewAttributes().Set("alt", `a "quoted" <value>`)

	value, ok := attrs.Get("alt")
	require.True(t, ok)
	assert.Equal(t, "a &quot;quoted&quot; &lt;value&gt;", value)
	assert.Equal(t, `alt="a &quot;quoted&quot; &lt;value&gt;"`, attrs.String())
}

func TestAttributes_InsertionOrder(t *testing.T) {
	attrs := NewAttributes().
		Set("class", "card").
		SetFlag("hidden").
		Set("id", "main")

	assert.Equal(t, []string{"class", "hidden", "id"}, attrs.Keys())
	assert.Equal(t, `class="card" hidden id="main"`, attrs.String())
}

func TestAttributes_SetKeepsPosition(t *testing.T) {
	attrs := NewAttributes().
		Set("a", "1").
		Set("b", "2").
		Set("a", "updated")

	assert.Equal(t, []string{"a", "b"}, attrs.Keys())
	value, _ := attrs.Get("a")
	assert.Equal(t, "updated", value)
}

func TestAttributes_Flags(t *testing.T) {
	attrs := NewAttributes().SetFlag("required")

	assert.True(t, attrs.Has("required"))
	assert.True(t, attrs.IsFlag("required"))
	value, ok := attrs.Get("required")
	assert.True(t, ok)
	assert.Equal(t, "", value)

	attrs = attrs.Set("required", "yes")
	assert.False(t, attrs.IsFlag("required"))
}

func TestAttributes_Immutability(t *testing.T) {
	base := NewAttributes().Set("a", "1")
	derived := base.Set("b", "2")
	dropped := derived.Drop("a")

	assert.Equal(t, []string{"a"}, base.Keys())
	assert.Equal(t, []string{"a", "b"}, derived.Keys())
	assert.Equal(t, []string{"b"}, dropped.Keys())
}

func TestAttributes_MergeDoesNotReEscape(t *testing.T) {
	overlay := NewAttributes().Set("title", `"x"`)
	merged := NewAttributes().Set("id", "a").Merge(overlay)

	value, _ := merged.Get("title")
	assert.Equal(t, "&quot;x&quot;", value)
	assert.Equal(t, []string{"id", "title"}, merged.Keys())
}

func TestAttributes_Equal(t *testing.T) {
	a := NewAttributes().Set("x", "1").SetFlag("f")
	b := NewAttributes().Set("x", "1").SetFlag("f")
	c := NewAttributes().SetFlag("f").Set("x", "1")

	assert.True(t, a.Equal(b))
	// Order matters.
	assert.False(t, a.Equal(c))
}

func TestAttributes_ZeroValue(t *testing.T) {
	var attrs Attributes
	assert.Equal(t, 0, attrs.Len())
	assert.False(t, attrs.Has("x"))
	assert.Equal(t, "", attrs.String())
}
