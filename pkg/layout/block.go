package layout

// Block is the line-fitting collaborator: it accumulates styled words
// under one BlockStyle and later breaks them into fitted lines. The
// engine only consumes this interface; the word-wrap implementation
// lives outside the core.
type Block interface {
	// AddWord appends a word. Link words render in italic regardless of
	// the surrounding emphasis.
	AddWord(text string, flags StyleFlags, isLink bool)

	// Empty reports whether no words have been added.
	Empty() bool

	// Len returns the number of accumulated words.
	Len() int

	// Style returns the block's style.
	Style() BlockStyle

	// SetStyle replaces the block's style.
	SetStyle(style BlockStyle)

	// ExtractLines lays the words out into lines no wider than width and
	// calls emit once per line, in order. The sequence is lazy, one-shot
	// and non-restartable; the block is spent afterwards.
	ExtractLines(fontID int, width int, emit func(Line))
}

// BlockFactory creates a fresh Block for a new logical document block.
type BlockFactory func(style BlockStyle) Block
