package layout

// Tag identifies the variant of a page element. The set is closed; codec
// and render dispatch switch over it exhaustively.
type Tag uint8

const (
	TagLine      Tag = 1
	TagImage     Tag = 2
	TagSeparator Tag = 3
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagLine:
		return "line"
	case TagImage:
		return "image"
	case TagSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Word is one laid-out word within a fitted line. X is the horizontal
// offset from the line origin, assigned by the line fitter so that
// alignment and justification survive serialization.
type Word struct {
	Text  string
	Flags StyleFlags
	X     int16
}

// Line is a fitted span of styled words. Content is copied in at layout
// time; nothing is shared with the block it came from.
type Line struct {
	Words []Word
}

// Text returns the plain text of the line with single spaces between
// words. Used for cache inspection, not rendering.
func (l Line) Text() string {
	var out []byte
	for i, w := range l.Words {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, w.Text...)
	}
	return string(out)
}

// ImageRef references a decoded bitmap block by stable id rather than by
// pointer, so a cached page can be reloaded without the original asset
// in memory.
type ImageRef struct {
	BitmapID uint32
	Width    uint16
	Height   uint16
}

// Element is one positioned item on a page: a tagged union over
// {Line, Image, Separator}. Exactly the variant named by Tag is valid.
type Element struct {
	Tag  Tag
	X, Y int16

	Line  Line     // TagLine
	Image ImageRef // TagImage
	Width int16    // TagSeparator: rule width
}

// Page is an ordered sequence of positioned elements. A page is immutable
// once emitted by the engine.
type Page struct {
	Elements []Element
}

// HasImages reports whether any element is an image. E-ink callers use
// this to force a full display refresh.
func (p *Page) HasImages() bool {
	for _, el := range p.Elements {
		if el.Tag == TagImage {
			return true
		}
	}
	return false
}
