package rubikscan

// cell addresses one facelet on a face.
type cell struct {
	row, col int
}

// strip is an ordered run of three facelets on one face. The order
// matters: it keeps the run contiguous as it travels around the
// turned face, so reversed runs read their cells back to front.
type strip struct {
	face  Face
	cells [3]cell
}

// edgeCycles defines, for each face, the four adjacent strips moved
// by a clockwise turn of that face. Strips are listed in transfer
// order: the contents of entry i move to entry i+1 (wrapping), so a
// clockwise turn is a single 4-cycle of strips. The turned face's
// opposite never appears in its cycle.
var edgeCycles = [6][4]strip{
	Front: {
		{Up, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Right, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Down, [3]cell{{0, 2}, {0, 1}, {0, 0}}},
		{Left, [3]cell{{2, 2}, {1, 2}, {0, 2}}},
	},
	Back: {
		{Up, [3]cell{{0, 2}, {0, 1}, {0, 0}}},
		{Left, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Down, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Right, [3]cell{{2, 2}, {1, 2}, {0, 2}}},
	},
	Left: {
		{Up, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Front, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Down, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Back, [3]cell{{2, 2}, {1, 2}, {0, 2}}},
	},
	Right: {
		{Up, [3]cell{{0, 2}, {1, 2}, {2, 2}}},
		{Back, [3]cell{{2, 0}, {1, 0}, {0, 0}}},
		{Down, [3]cell{{0, 2}, {1, 2}, {2, 2}}},
		{Front, [3]cell{{0, 2}, {1, 2}, {2, 2}}},
	},
	Up: {
		{Front, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
		{Left, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
		{Back, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
		{Right, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
	},
	Down: {
		{Front, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Right, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Back, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Left, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
	},
}

// RotateClockwise turns a face 90 degrees clockwise, viewed from
// outside that face: the face's own block rotates in place and the
// four adjacent strips cycle. Every facelet is relocated, never
// recolored, so the 54-color multiset is preserved.
func (c *Cube) RotateClockwise(face Face) {
	c.rotateBlockCW(face)
	c.cycleStrips(face, false)
}

// RotateCounterClockwise turns a face 90 degrees counter-clockwise.
// Equivalent to three clockwise turns of the same face.
func (c *Cube) RotateCounterClockwise(face Face) {
	c.rotateBlockCCW(face)
	c.cycleStrips(face, true)
}

// rotateBlockCW rotates a face's own 3x3 block clockwise:
// (row,col) -> (col, 2-row).
func (c *Cube) rotateBlockCW(face Face) {
	old := c.facelets[face]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c.facelets[face][col][2-row] = old[row][col]
		}
	}
}

// rotateBlockCCW rotates a face's own 3x3 block counter-clockwise:
// (row,col) -> (2-col, row).
func (c *Cube) rotateBlockCCW(face Face) {
	old := c.facelets[face]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c.facelets[face][2-col][row] = old[row][col]
		}
	}
}

// cycleStrips moves the four adjacent strips of a face one step
// around its edge cycle, forward for clockwise and backward for
// counter-clockwise.
func (c *Cube) cycleStrips(face Face, reverse bool) {
	cycle := edgeCycles[face]
	if reverse {
		// Backward: contents of entry i+1 move to entry i.
		saved := c.readStrip(cycle[0])
		c.writeStrip(cycle[0], c.readStrip(cycle[1]))
		c.writeStrip(cycle[1], c.readStrip(cycle[2]))
		c.writeStrip(cycle[2], c.readStrip(cycle[3]))
		c.writeStrip(cycle[3], saved)
		return
	}
	// Forward: contents of entry i move to entry i+1.
	saved := c.readStrip(cycle[3])
	c.writeStrip(cycle[3], c.readStrip(cycle[2]))
	c.writeStrip(cycle[2], c.readStrip(cycle[1]))
	c.writeStrip(cycle[1], c.readStrip(cycle[0]))
	c.writeStrip(cycle[0], saved)
}

func (c *Cube) readStrip(s strip) [3]Color {
	var out [3]Color
	for i, cl := range s.cells {
		out[i] = c.facelets[s.face][cl.row][cl.col]
	}
	return out
}

func (c *Cube) writeStrip(s strip, colors [3]Color) {
	for i, cl := range s.cells {
		c.facelets[s.face][cl.row][cl.col] = colors[i]
	}
}
