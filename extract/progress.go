package extract

import (
	"sync/atomic"

	"github.com/framex-cli/framex/util"
)

// Progress counts decoded and written frames. The decoder and writers update it
// while a renderer reads it concurrently.
type Progress struct {
	total   atomic.Int64
	decoded atomic.Int64
	written atomic.Int64
	bytes   atomic.Int64
}

// NewProgress returns a counter expecting total frames.
func NewProgress(total int) *Progress {
	p := &Progress{}
	p.total.Store(int64(total))
	return p
}

// Total is the expected frame count. It grows when the decoder outruns a low estimate.
func (p *Progress) Total() int {
	return int(p.total.Load())
}

func (p *Progress) Decoded() int {
	return int(p.decoded.Load())
}

func (p *Progress) Written() int {
	return int(p.written.Load())
}

// Bytes is the total size of written frames.
func (p *Progress) Bytes() int64 {
	return p.bytes.Load()
}

// Fraction is the decoded share of the total in [0, 1].
func (p *Progress) Fraction() float64 {
	total := p.Total()
	if total <= 0 {
		return 0
	}
	return util.Clamp(float64(p.Decoded())/float64(total), 0, 1)
}

func (p *Progress) addDecoded() {
	n := p.decoded.Add(1)
	for {
		total := p.total.Load()
		if n <= total || p.total.CompareAndSwap(total, n) {
			return
		}
	}
}

func (p *Progress) addWritten(size int64) {
	p.written.Add(1)
	p.bytes.Add(size)
}
