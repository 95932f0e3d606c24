// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageDecoder decodes image files for NewTextureFromFile.
type ImageDecoder interface {
	Decode(r io.Reader) (image.Image, error)
}

// defaultDecoder detects the format by content. It knows PNG, JPEG, GIF,
// BMP, TIFF and WebP.
type defaultDecoder struct{}

func (defaultDecoder) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// NewPixelBuffer converts img to non-premultiplied RGBA8, row 0 at the
// top of the image.
func NewPixelBuffer(img image.Image) PixelBuffer {
	b := img.Bounds()
	dst, ok := img.(*image.NRGBA)
	if !ok || dst.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		dst = image.NewNRGBA(image.Rectangle{Max: b.Size()})
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	}
	return PixelBuffer{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}
}

// fitImage scales img down to fit in a square of size limit, keeping its
// aspect ratio.
func fitImage(img image.Image, limit int) image.Image {
	sz := img.Bounds().Size()
	if limit <= 0 || sz.X <= limit && sz.Y <= limit {
		return img
	}
	w, h := limit, limit
	if sz.X > sz.Y {
		h = max(1, sz.Y*limit/sz.X)
	} else {
		w = max(1, sz.X*limit/sz.Y)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// NewTextureFromFile decodes the image at path with the context decoder,
// flips it so that texture row 0 is the bottom of the image, and uploads
// it to a new texture. Images larger than the driver limit are scaled
// down. Read and decode failures are reported as *LoadError.
func (c *Context) NewTextureFromFile(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	img, err := c.decoder.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	pb := NewPixelBuffer(fitImage(img, c.maxTexSize)).FlipVertical()
	tex, err := c.NewTexture()
	if err != nil {
		return nil, err
	}
	if err := tex.Upload2D(pb); err != nil {
		tex.Release()
		return nil, err
	}
	return tex, nil
}
