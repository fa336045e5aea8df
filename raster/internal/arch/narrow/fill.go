package narrow

import (
	"encoding/binary"

	"github.com/cwbudde/algo-rgba/raster/internal/arch/generic"
)

// Fill broadcasts the packed pixel into a 4-lane vector, stores it 4 pixels
// at a time and finishes total%4 pixels with the scalar loop.
func Fill(pix []byte, width, height int, r, g, b, a uint8) {
	total := width * height
	blocks := total / Lanes

	packed := uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
	var vec [groupBytes]byte
	for i := range Lanes {
		binary.LittleEndian.PutUint32(vec[i*4:], packed)
	}

	for i := 0; i < blocks; i++ {
		*(*[groupBytes]byte)(pix[i*groupBytes:]) = vec
	}

	generic.FillPixels(pix[blocks*groupBytes:total*4], r, g, b, a)
}
