package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOffset = "offset"
	FieldSize   = "size"

	// Rendering configuration fields.
	FieldFontID    = "font_id"
	FieldViewportW = "viewport_width"
	FieldViewportH = "viewport_height"
	FieldAlignment = "alignment"

	// Pagination fields.
	FieldPage  = "page"
	FieldPages = "pages"
	FieldWords = "words"
	FieldLines = "lines"
	FieldWidth = "width"
)
