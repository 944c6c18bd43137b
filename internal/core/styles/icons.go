package styles

// Glyphs stand in for the icon set used by task rows. They are plain
// unicode so the board renders without a patched font.
var (
	IconCheck     = "✓"
	IconUnchecked = " "
	IconPlus      = "+"
	IconEdit      = "✎"
	IconTrash     = "✗"
	IconCursor    = "┃"
	IconArchive   = "▤"
)
