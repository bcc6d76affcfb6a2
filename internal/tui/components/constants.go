package components

// Card geometry. A card is three text lines inside a one-cell border.
const (
	CardHeight = 5

	// ColumnHeaderRows is the number of rows between the column's top edge and
	// its first card: top border, header line, scroll indicator line.
	ColumnHeaderRows = 3

	// ColumnFooterRows is the bottom indicator line plus the bottom border
	ColumnFooterRows = 2

	// columnChromeWidth is border plus padding on both sides
	columnChromeWidth = 4
)

// MaxVisibleCards returns how many cards fit in a column of the given outer height
func MaxVisibleCards(height int) int {
	return max((height-ColumnHeaderRows-ColumnFooterRows)/CardHeight, 1)
}

// CardWidth returns the outer card width for a column of the given outer width
func CardWidth(columnWidth int) int {
	return max(columnWidth-columnChromeWidth, 8)
}
