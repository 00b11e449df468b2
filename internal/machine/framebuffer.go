package machine

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

const spriteWidth = 8

// Framebuffer is the monochrome 64x32 display, stored row-major with one byte per pixel.
type Framebuffer struct {
	pixels [DisplayWidth * DisplayHeight]byte
	dirty  bool
}

// Pixel returns the pixel value at the given coordinates, wrapping them around the display edges.
func (f *Framebuffer) Pixel(x, y int) byte {
	return f.pixels[offset(x, y)]
}

// Pixels returns a copy of all pixels in row-major order.
func (f *Framebuffer) Pixels() []byte {
	pixels := make([]byte, len(f.pixels))
	copy(pixels, f.pixels[:])
	return pixels
}

// Clear turns off all pixels and marks the framebuffer dirty.
func (f *Framebuffer) Clear() {
	f.pixels = [DisplayWidth * DisplayHeight]byte{}
	f.dirty = true
}

// Dirty returns whether the framebuffer changed since the presentation layer last consumed it.
func (f *Framebuffer) Dirty() bool {
	return f.dirty
}

// ClearDirty marks the current frame as consumed.
func (f *Framebuffer) ClearDirty() {
	f.dirty = false
}

// DrawSprite XORs an 8 pixel wide sprite onto the framebuffer, one row per byte,
// most significant bit leftmost. The start coordinates are wrapped and every
// pixel is wrapped independently, so sprites continue on the opposite edge.
// It returns whether any lit pixel was turned off.
func (f *Framebuffer) DrawSprite(x, y byte, rows []byte) bool {
	startX := int(x) % DisplayWidth
	startY := int(y) % DisplayHeight
	collision := false

	for row, data := range rows {
		for bit := range spriteWidth {
			if data&(0x80>>bit) == 0 {
				continue
			}
			i := offset(startX+bit, startY+row)
			if f.pixels[i] == 1 {
				collision = true
			}
			f.pixels[i] ^= 1
		}
	}

	f.dirty = true
	return collision
}

func offset(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}
