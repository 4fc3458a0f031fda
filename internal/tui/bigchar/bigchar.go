// Package bigchar renders Hangul syllable blocks as large block art
// using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var loadedFace font.Face

func init() {
	// Try to load a Korean-capable font from common system locations
	fontPaths := []string{
		// macOS
		"/System/Library/Fonts/AppleSDGothicNeo.ttc",
		"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
		// Linux
		"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/truetype/unfonts-core/UnDotum.ttf",
		// Windows
		"C:\\Windows\\Fonts\\malgun.ttf",
		"C:\\Windows\\Fonts\\gulim.ttc",
	}

	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		// Noto CJK and the Windows fonts ship as collections
		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
					Size: 64,
					DPI:  72,
				}); err == nil {
					loadedFace = face
					return
				}
			}
		}

		if fnt, err := opentype.Parse(data); err == nil {
			if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
				Size: 64,
				DPI:  72,
			}); err == nil {
				loadedFace = face
				return
			}
		}
	}
}

// RenderBlock renders a syllable using half-block characters (▀▄█).
// cols and rows define the output size in terminal cells.
func RenderBlock(char string, cols, rows int) string {
	if char == "" || loadedFace == nil {
		return ""
	}

	r := []rune(char)[0]

	bounds, _, _ := loadedFace.GlyphBounds(r)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := glyphWidth + padding*2
	srcHeight := glyphHeight + padding*2

	if srcWidth < 64 {
		srcWidth = 64
	}
	if srcHeight < 64 {
		srcHeight = 64
	}

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	x := (srcWidth - glyphWidth) / 2
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(char)

	// rows*2 because each cell carries two vertical pixels
	scaledImg := scaleDown(srcImg, cols, rows*2)

	return imageToHalfBlocks(scaledImg, cols, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := int(float64(dx+1) * xRatio)
			sy2 := int(float64(dy+1) * yRatio)

			if sx2 > srcWidth {
				sx2 = srcWidth
			}
			if sy2 > srcHeight {
				sy2 = srcHeight
			}

			var sum int
			count := 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topBright := getPixelBrightness(img, col, row*2)
			bottomBright := getPixelBrightness(img, col, row*2+1)

			threshold := uint8(40)
			topOn := topBright > threshold
			bottomOn := bottomBright > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func getPixelBrightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable returns true if a Korean-capable font was found
func IsAvailable() bool {
	return loadedFace != nil
}

var cache = make(map[string]string)

// GetCached returns the cached rendering or renders a new one.
func GetCached(char string, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s:%dx%d", char, cols, rows)
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := RenderBlock(char, cols, rows)
	cache[key] = rendered
	return rendered
}
