package stego

// channelWalker is a cursor over the canonical traversal order: row-major
// pixels, channels R, G, B within each pixel. Embedding and extraction
// both drive this walker, which is what makes the bit layout identical on
// both sides.
type channelWalker struct {
	x       int
	y       int
	channel int
	width   int
	height  int
}

func newChannelWalker(width, height int) *channelWalker {
	return &channelWalker{width: width, height: height}
}

// done reports whether the walker has moved past the last channel of the
// last pixel.
func (w *channelWalker) done() bool {
	return w.y >= w.height
}

// step advances to the next channel, wrapping to the next pixel and then
// the next row.
func (w *channelWalker) step() {
	w.channel++
	if w.channel >= channelsPerPixel {
		w.channel = 0
		w.x++
		if w.x >= w.width {
			w.x = 0
			w.y++
		}
	}
}
