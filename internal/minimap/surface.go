package minimap

// Surface is the persistent pixel buffer the compositor draws into. It is a
// write-only target: the compositor never reads pixels back.
//
// Implementations live in pkg/render (ebiten image, gg pixmap, tcell screen).
type Surface interface {
	// Resize changes the grid resolution. Prior contents are undefined
	// afterwards.
	Resize(width, height int)
	// Size returns the grid resolution.
	Size() (width, height int)
	// Fill replaces every pixel with c at the given opacity.
	Fill(c Color, alpha float64)
	// Begin opens a composite bracket. Composites until End accumulate
	// without intermediate flushes.
	Begin()
	// Composite draws the whole batch in one operation, each cursor as a
	// 1x1 rectangle of its fill color blended over the surface at alpha.
	// Cursors outside the surface are clipped.
	Composite(batch []*Cursor, alpha float64)
	// End closes the bracket opened by Begin.
	End()
}

// DisplayScaler is implemented by surfaces that are presented at a size
// independent of their grid resolution.
type DisplayScaler interface {
	SetDisplaySize(width, height int)
}
