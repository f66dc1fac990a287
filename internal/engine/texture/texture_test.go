package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scrollscene/internal/assets"
)

// gradientPNG encodes a 1x3 image: black, gray, white from top to bottom.
func gradientPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 1, 3))
	img.SetGray(0, 0, color.Gray{0})
	img.SetGray(0, 1, color.Gray{128})
	img.SetGray(0, 2, color.Gray{255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	img, format, err := Decode(gradientPNG(t))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 1, 3), img.Rect)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 2))
}

func TestDecodeInvalid(t *testing.T) {
	_, _, err := Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestToRGBAResetsOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(5, 5, color.RGBA{1, 2, 3, 255})

	out := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 1), out.Rect)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, out.RGBAAt(0, 0))

	same := image.NewRGBA(image.Rect(0, 0, 1, 1))
	assert.Same(t, same, ToRGBA(same))
}

func TestFlipVertical(t *testing.T) {
	img, _, err := Decode(gradientPNG(t))
	require.NoError(t, err)

	FlipVertical(img)
	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(128), img.RGBAAt(0, 1).R)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 2).R)
}

func collect(t *testing.T, l *Loader, n int) []Result {
	t.Helper()
	var out []Result
	deadline := time.Now().Add(5 * time.Second)
	for len(out) < n && time.Now().Before(deadline) {
		out = append(out, l.Ready()...)
		time.Sleep(5 * time.Millisecond)
	}
	require.Len(t, out, n)
	return out
}

func TestLoader(t *testing.T) {
	m := assets.NewManager()
	m.AddFS("mem", fstest.MapFS{
		"textures/gradients/3.png": {Data: gradientPNG(t)},
		"broken.png":               {Data: []byte("garbage")},
	})

	l := NewLoader(m, 2)
	defer l.Close()

	l.Request("textures/gradients/3.png")
	l.Request("textures/gradients/3.png") // in flight, dropped
	l.Request("missing.png")
	l.Request("broken.png")

	results := collect(t, l, 3)
	byPath := make(map[string]Result)
	for _, r := range results {
		byPath[r.Path] = r
	}

	ok := byPath["textures/gradients/3.png"]
	require.NoError(t, ok.Err)
	assert.Equal(t, uint8(255), ok.Image.RGBAAt(0, 0).R, "rows are bottom-up")

	assert.ErrorIs(t, byPath["missing.png"].Err, assets.ErrNotFound)
	assert.Error(t, byPath["broken.png"].Err)
	assert.Zero(t, l.Pending())
}

func TestLoaderClose(t *testing.T) {
	l := NewLoader(assets.NewManager(), 1)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	l.Request("ignored.png")
	assert.Zero(t, l.Pending())
}
