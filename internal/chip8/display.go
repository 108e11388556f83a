package chip8

import "strings"

// Display dimensions of the monochrome framebuffer.
const (
	DisplayWidth  = 64
	DisplayHeight = 32

	// DisplayRowBytes is the number of bytes of a framebuffer row, one bit per pixel.
	DisplayRowBytes = DisplayWidth / 8
	// DisplayBytes is the size of the framebuffer in bytes.
	DisplayBytes = DisplayRowBytes * DisplayHeight
)

// display stores the pixels of row y in bytes y*8 to y*8+7, the leftmost
// pixel of a byte is its most significant bit.
type display [DisplayBytes]byte

func (d *display) clear() {
	*d = display{}
}

// xorPixel flips the pixel and returns true if it was set before.
func (d *display) xorPixel(x, y int) bool {
	index := y*DisplayRowBytes + x/8
	mask := byte(0x80) >> (x % 8)
	wasSet := d[index]&mask != 0
	d[index] ^= mask
	return wasSet
}

func (d *display) pixel(x, y int) bool {
	return d[y*DisplayRowBytes+x/8]&(byte(0x80)>>(x%8)) != 0
}

// Framebuffer is a read-only view of the machine display. It reflects the
// current display content, hosts that render from a different goroutine
// than the one running the machine have to synchronize access themselves.
type Framebuffer struct {
	buf *display
}

// Width returns the display width in pixels.
func (f Framebuffer) Width() int {
	return DisplayWidth
}

// Height returns the display height in pixels.
func (f Framebuffer) Height() int {
	return DisplayHeight
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates outside of the display return false.
func (f Framebuffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= DisplayWidth || y >= DisplayHeight {
		return false
	}
	return f.buf.pixel(x, y)
}

// Bytes returns a copy of the packed framebuffer data.
func (f Framebuffer) Bytes() []byte {
	b := make([]byte, DisplayBytes)
	copy(b, f.buf[:])
	return b
}

// String renders the framebuffer as text, one line per row.
func (f Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((DisplayWidth + 1) * DisplayHeight)
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if f.buf.pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
