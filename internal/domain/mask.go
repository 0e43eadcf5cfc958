package domain

// Mask is a boolean per-pixel map marking positions where two images differ.
// The zero position is the top-left pixel of both images.
type Mask struct {
	w, h int
	bits []bool
}

func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

func (m *Mask) Width() int  { return m.w }
func (m *Mask) Height() int { return m.h }

func (m *Mask) At(x, y int) bool {
	return m.bits[y*m.w+x]
}

func (m *Mask) Set(x, y int, v bool) {
	m.bits[y*m.w+x] = v
}

// Count returns the number of set positions.
func (m *Mask) Count() uint64 {
	var n uint64
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}
