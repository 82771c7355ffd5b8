package render

// Tile is an opaque index in [0, Config.TileCount()) identifying one
// rectangular region of the image. Tiles are numbered row-major across
// the tile grid.
type Tile int

// TilesX returns the number of tile columns.
func (c Config) TilesX() int {
	return (c.Width + c.TileSize - 1) / c.TileSize
}

// TilesY returns the number of tile rows.
func (c Config) TilesY() int {
	return (c.Height + c.TileSize - 1) / c.TileSize
}

// TileCount returns the total number of tiles covering the image.
func (c Config) TileCount() int {
	return c.TilesX() * c.TilesY()
}

// Bounds is a tile's pixel rectangle. Max coordinates are inclusive and
// already clipped to the image, so the rectangle never leaves the frame.
type Bounds struct {
	XMin, YMin int
	XMax, YMax int
}

// Width returns the clipped tile width in pixels.
func (b Bounds) Width() int { return b.XMax - b.XMin + 1 }

// Height returns the clipped tile height in pixels.
func (b Bounds) Height() int { return b.YMax - b.YMin + 1 }

// PixelBytes returns the byte size of the clipped tile's RGBA block.
func (b Bounds) PixelBytes() int { return b.Width() * b.Height() * ColorChannels }

// TileBounds computes the pixel rectangle for a tile. It is a pure
// function of the config and the tile index; the workers and the merger
// must agree on it, so both call this.
func (c Config) TileBounds(t Tile) Bounds {
	tileX := int(t) % c.TilesX()
	tileY := int(t) / c.TilesX()

	xMin := tileX * c.TileSize
	xMax := xMin + c.TileSize - 1
	if xMax > c.Width-1 {
		xMax = c.Width - 1
	}

	yMin := tileY * c.TileSize
	yMax := yMin + c.TileSize - 1
	if yMax > c.Height-1 {
		yMax = c.Height - 1
	}

	return Bounds{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}
