package pagecache_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/pkg/layout"
	"github.com/finch-reader/finch/pkg/pagecache"
)

func TestCodec_RoundTrip(t *testing.T) {
	page := &layout.Page{
		Elements: []layout.Element{
			{
				Tag: layout.TagLine,
				X:   15, Y: 0,
				Line: layout.Line{Words: []layout.Word{
					{Text: "Hello", Flags: layout.FlagBold, X: 0},
					{Text: "naïve", Flags: layout.FlagItalic | layout.FlagLink, X: 52},
				}},
			},
			{
				Tag: layout.TagImage,
				X:   40, Y: 100,
				Image: layout.ImageRef{BitmapID: 9001, Width: 320, Height: 200},
			},
			{
				Tag: layout.TagSeparator,
				X:   48, Y: 310,
				Width: 384,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, pagecache.EncodePage(&buf, page))

	decoded, err := pagecache.DecodePage(&buf)
	require.NoError(t, err)
	assert.Equal(t, page, decoded)
	assert.True(t, decoded.HasImages())
}

func TestCodec_EmptyPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pagecache.EncodePage(&buf, &layout.Page{}))

	decoded, err := pagecache.DecodePage(&buf)
	require.NoError(t, err)
	assert.Empty(t, decoded.Elements)
}

func TestCodec_UnknownTag(t *testing.T) {
	t.Run("encode rejects it", func(t *testing.T) {
		page := &layout.Page{Elements: []layout.Element{{Tag: layout.Tag(9)}}}
		err := pagecache.EncodePage(&bytes.Buffer{}, page)
		require.ErrorIs(t, err, pagecache.ErrCorrupt)
	})

	t.Run("decode surfaces corruption", func(t *testing.T) {
		// One element whose tag byte is out of the closed set.
		data := []byte{
			0x01, 0x00, // element count 1
			0x09,       // tag 9
			0x00, 0x00, // x
			0x00, 0x00, // y
		}
		_, err := pagecache.DecodePage(bytes.NewReader(data))
		require.ErrorIs(t, err, pagecache.ErrCorrupt)
	})
}

func TestCodec_OversizedWord(t *testing.T) {
	// A 64 KiB word cannot fit the u16 length prefix; a single unbroken
	// code-block line can reach this.
	page := &layout.Page{
		Elements: []layout.Element{{
			Tag:  layout.TagLine,
			Line: layout.Line{Words: []layout.Word{{Text: strings.Repeat("x", 1<<16)}}},
		}},
	}

	err := pagecache.EncodePage(&bytes.Buffer{}, page)
	require.ErrorIs(t, err, pagecache.ErrCorrupt)

	t.Run("largest encodable word round-trips", func(t *testing.T) {
		page.Elements[0].Line.Words[0].Text = strings.Repeat("x", 1<<16-1)
		var buf bytes.Buffer
		require.NoError(t, pagecache.EncodePage(&buf, page))

		decoded, err := pagecache.DecodePage(&buf)
		require.NoError(t, err)
		assert.Equal(t, page, decoded)
	})
}

func TestCodec_TruncatedBody(t *testing.T) {
	page := &layout.Page{
		Elements: []layout.Element{{
			Tag:  layout.TagLine,
			Line: layout.Line{Words: []layout.Word{{Text: "word"}}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, pagecache.EncodePage(&buf, page))

	_, err := pagecache.DecodePage(bytes.NewReader(buf.Bytes()[:buf.Len()-3]))
	require.ErrorIs(t, err, pagecache.ErrCorrupt)
}
