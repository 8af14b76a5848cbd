package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "plain text",
			text: "Led the payments team",
			want: []Span{{Text: "Led the payments team"}},
		},
		{
			name: "double asterisk emphasis",
			text: "Grew revenue by **40%** in one year",
			want: []Span{
				{Text: "Grew revenue by "},
				{Text: "40%", Strong: true},
				{Text: " in one year"},
			},
		},
		{
			name: "single asterisk emphasis",
			text: "Shipped *three* major releases",
			want: []Span{
				{Text: "Shipped "},
				{Text: "three", Strong: true},
				{Text: " major releases"},
			},
		},
		{
			name: "multiple spans",
			text: "**First** and **second**",
			want: []Span{
				{Text: "First", Strong: true},
				{Text: " and "},
				{Text: "second", Strong: true},
			},
		},
		{
			name: "empty string",
			text: "",
			want: []Span{{Text: ""}},
		},
		{
			name: "unclosed marker stays literal",
			text: "a **b",
			want: []Span{{Text: "a **b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInline(tt.text))
		})
	}
}

func TestInlineHTML_EscapesContent(t *testing.T) {
	got := string(InlineHTML(`<script> & **"bold"**`))
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "&amp;")
	assert.Contains(t, got, `<strong>&#34;bold&#34;</strong>`)
}

func TestParseDescription_Plain(t *testing.T) {
	d := ParseDescription("First line\nSecond line")

	assert.False(t, d.Mixed)
	assert.Empty(t, d.Blocks)
	assert.Equal(t, "First line\nSecond line", d.Raw)
	assert.False(t, d.Empty())
}

func TestParseDescription_Bullets(t *testing.T) {
	d := ParseDescription("Overview paragraph\n* First achievement\n- Second achievement\n• Third achievement")

	assert.True(t, d.Mixed)
	require.Len(t, d.Blocks, 4)
	assert.Equal(t, Block{Text: "Overview paragraph"}, d.Blocks[0])
	assert.Equal(t, Block{Bullet: true, Text: "First achievement"}, d.Blocks[1])
	assert.Equal(t, Block{Bullet: true, Text: "Second achievement"}, d.Blocks[2])
	assert.Equal(t, Block{Bullet: true, Text: "Third achievement"}, d.Blocks[3])
	assert.Equal(t, "Overview paragraph\n* First achievement\n- Second achievement\n• Third achievement", d.Raw)
}

func TestParseDescription_BulletNeedsSeparator(t *testing.T) {
	// A marker glued to text is not a bullet.
	d := ParseDescription("*emphasis only*\n-dash-word")

	assert.False(t, d.Mixed)
}

func TestParseDescription_SkipsBlankLines(t *testing.T) {
	d := ParseDescription("* one\n\n   \n* two")

	assert.True(t, d.Mixed)
	require.Len(t, d.Blocks, 2)
	assert.Equal(t, "one", d.Blocks[0].Text)
	assert.Equal(t, "two", d.Blocks[1].Text)
}

func TestDescription_Empty(t *testing.T) {
	assert.True(t, ParseDescription("").Empty())
	assert.True(t, ParseDescription("   \n\t").Empty())
	assert.False(t, ParseDescription("x").Empty())
}

func TestBlockHTML_RendersEmphasis(t *testing.T) {
	b := Block{Bullet: true, Text: "Reduced latency by **60%**"}
	assert.Equal(t, "Reduced latency by <strong>60%</strong>", string(b.HTML()))
}
