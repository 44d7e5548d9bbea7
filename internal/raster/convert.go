package raster

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/lucasb-eyer/go-colorful"
)

// Channel selects how a color pixel is reduced to a single sample.
type Channel string

const (
	// ChannelLuma uses weighted RGB luminance in the 0-255 range.
	ChannelLuma Channel = "luma"

	// ChannelLightness uses CIE L* in the 0-100 range. Fully transparent
	// pixels sample as 0.
	ChannelLightness Channel = "lightness"
)

// ParseChannel converts a channel name to a Channel. The empty string selects ChannelLuma.
func ParseChannel(name string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(name))) {
	case "", ChannelLuma:
		return ChannelLuma, nil
	case ChannelLightness:
		return ChannelLightness, nil
	default:
		return "", fmt.Errorf("unknown channel %q (valid: luma, lightness)", name)
	}
}

// FromImage samples img into a grid using the given channel.
func FromImage(img image.Image, ch Channel) (*Image, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}

	samples := make([]float64, width*height)
	switch ch {
	case "", ChannelLuma:
		gray := effect.Grayscale(img)
		gb := gray.Bounds()
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				samples[y*width+x] = float64(gray.RGBAAt(gb.Min.X+x, gb.Min.Y+y).R)
			}
		}
	case ChannelLightness:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c, ok := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
				if !ok {
					continue
				}
				l, _, _ := c.Lab()
				samples[y*width+x] = l * 100
			}
		}
	default:
		return nil, fmt.Errorf("unknown channel %q", ch)
	}
	return newOwned(width, height, samples), nil
}

// ToGray renders the image as 8-bit grayscale.
//
// Without normalize, samples are rounded and clamped to [0, 255]. With
// normalize, the value range is stretched linearly onto [0, 255]; a constant
// image renders black.
func (im *Image) ToGray(normalize bool) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, im.width, im.height))
	lo, span := 0.0, 255.0
	if normalize {
		lo = im.rng.Min
		span = im.rng.Max - im.rng.Min
	}
	for i, v := range im.samples {
		var g float64
		switch {
		case normalize && span == 0:
			g = 0
		case normalize:
			g = (v - lo) / span * 255
		default:
			g = v
		}
		out.Pix[(i/im.width)*out.Stride+i%im.width] = toByte(g)
	}
	return out
}

// toByte rounds and clamps a sample to the 8-bit range. NaN maps to 0.
func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
