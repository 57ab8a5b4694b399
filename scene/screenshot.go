// This file is part of Frag.
//
// Frag is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frag is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frag.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/logger"
)

// ScreenshotError is returned by Screenshot() if the screenshot cannot be
// started. Errors that occur while the image is being written are logged.
const ScreenshotError = "scene: screenshot: %v"

type encoder func(f *os.File, img image.Image) error

// choose encoder by file extension
func imageEncoder(path string) (encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return func(f *os.File, img image.Image) error {
			return png.Encode(f, img)
		}, nil
	case ".jpg", ".jpeg":
		return func(f *os.File, img image.Image) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
		}, nil
	}
	return nil, fmt.Errorf("unsupported image format %q", filepath.Ext(path))
}

// flipVertical reverses the order of rows in the image. the GL origin is at
// the bottom left.
func flipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		a := img.Pix[y*img.Stride : (y+1)*img.Stride]
		b := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// saveImage writes the image to disk and logs the outcome. the done channel
// is closed when the work has finished.
func saveImage(path string, img image.Image, enc encoder, done chan<- error) {
	err := func() error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}

		err = enc(f, img)
		if err != nil {
			_ = f.Close()
			return err
		}

		return f.Close()
	}()

	if err != nil {
		logger.Logf(logger.Allow, "scene", "screenshot failed: %v", err)
	} else {
		logger.Logf(logger.Allow, "scene", "screenshot saved: %s", path)
	}

	if done != nil {
		done <- err
		close(done)
	}
}

// Screenshot reads the most recent canvas and saves it to the path. The
// image format is chosen by the file extension (png or jpg). The pixels are
// read immediately and the file is written in the background. The returned
// channel receives the result of the write.
func (scn *Scene) Screenshot(path string) (<-chan error, error) {
	enc, err := imageEncoder(path)
	if err != nil {
		return nil, curated.Errorf(ScreenshotError, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(scn.canvas.width), int(scn.canvas.height)))

	scn.canvas.bindForRead()
	scn.gpu.PixelStorei(gl.PACK_ALIGNMENT, 1)
	scn.gpu.ReadPixels(0, 0, scn.canvas.width, scn.canvas.height, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
	scn.gpu.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	flipVertical(img)

	done := make(chan error, 1)
	go saveImage(path, img, enc, done)

	return done, nil
}
