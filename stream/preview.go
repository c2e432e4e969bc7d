package stream

import (
	"github.com/gdamore/tcell/v2"
)

// PreviewSink draws frames in a terminal, one cell per pixel, wrapping the
// strip across rows.
type PreviewSink struct {
	screen tcell.Screen
}

// NewPreviewSink creates a PreviewSink on an initialised screen.
func NewPreviewSink(screen tcell.Screen) *PreviewSink {
	return &PreviewSink{screen: screen}
}

// Send paints f and shows it.
func (p *PreviewSink) Send(f *Frame) error {
	w, h := p.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}

	for i := 0; i < f.Len(); i++ {
		x, y := i%w, i/w
		if y >= h {
			break
		}
		r, g, b := f.Pixel(i).Clamped().RGB255()
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		p.screen.SetContent(x, y, ' ', nil, style)
	}
	p.screen.Show()

	return nil
}
