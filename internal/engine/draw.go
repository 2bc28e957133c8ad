package engine

// maxSpriteRows is the height of the tallest sprite, the DXY0 big sprite.
const maxSpriteRows = 16

// spriteShape returns the number of rows, the bytes per row and the pixel
// width of the sprite drawn by DXYN.
func (e *Engine) spriteShape(n byte) (int, int, int) {
	if n != 0 || !e.cfg.HiresEnabled {
		return int(n), 1, 8
	}

	sx, _ := e.screen.Scale()
	switch {
	case e.cfg.Dxy0LoresWidth == 0:
		return 0, 1, 8
	case sx == 1:
		// hires mode always draws a 16x16 sprite
		return maxSpriteRows, 2, 16
	default:
		width := e.cfg.Dxy0LoresWidth
		return maxSpriteRows, width / 8, width
	}
}

// draw handles DXYN. VF is set to 1 if any set pixel was erased.
func (e *Engine) draw(op operands) error {
	if e.cfg.VblankQuirk {
		e.vblank = true
	}

	x, y := e.v[op.x], e.v[op.y]
	lines, bytesPerRow, width := e.spriteShape(op.n)

	data, err := e.memoryRange(lines * bytesPerRow)
	if err != nil {
		return err
	}

	var buf [maxSpriteRows]uint16
	rows := buf[:lines]
	for line := range rows {
		offset := line * bytesPerRow
		value := uint16(data[offset])
		if bytesPerRow == 2 {
			value = value<<8 | uint16(data[offset+1])
		}
		rows[line] = value
	}

	e.v[flagRegister] = 0
	if e.screen.DrawSprite(x, y, rows, width) {
		e.v[flagRegister] = 1
	}
	return nil
}
