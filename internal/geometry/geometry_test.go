package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfold/foldsplit/internal/imgpath"
)

func TestResizeDimensions(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		spec           ResizeSpec
		wantW, wantH   int
	}{
		{
			name:  "default scale doubles both axes",
			width: 750, height: 421,
			spec:  ResizeSpec{},
			wantW: 1500, wantH: 842,
		},
		{
			name:  "target width equal to current width is identity",
			width: 1500, height: 1000,
			spec:  ByWidth(1500),
			wantW: 1500, wantH: 1000,
		},
		{
			name:  "target width scales height uniformly",
			width: 1000, height: 600,
			spec:  ByWidth(500),
			wantW: 500, wantH: 300,
		},
		{
			name:  "explicit scale",
			width: 301, height: 201,
			spec:  ByScale(0.5),
			wantW: 150, wantH: 100,
		},
		{
			name:  "scale one is identity",
			width: 1500, height: 1000,
			spec:  ByScale(1.0),
			wantW: 1500, wantH: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ResizeDimensions(tt.width, tt.height, tt.spec)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestResizeSpecFactor(t *testing.T) {
	assert.InDelta(t, 1.0, ByWidth(640).Factor(640), 1e-9)
	assert.InDelta(t, 2.0, ResizeSpec{}.Factor(123), 1e-9)
	assert.InDelta(t, 0.75, ByScale(0.75).Factor(9999), 1e-9)
}

func TestTileCount(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{height: 1, want: 1},
		{height: 199, want: 1},
		{height: 200, want: 1},
		{height: 399, want: 1},
		{height: 400, want: 2},
		{height: 1000, want: 5},
		{height: 1050, want: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TileCount(tt.height), "height %d", tt.height)
	}
}

func TestTileBoundaries(t *testing.T) {
	boundaries := TileBoundaries(1000, 5)
	require.Len(t, boundaries, 5)

	expected := []TileBoundary{
		{Top: 0, Bottom: 200},
		{Top: 190, Bottom: 400},
		{Top: 390, Bottom: 600},
		{Top: 590, Bottom: 800},
		{Top: 790, Bottom: 1000},
	}
	assert.Equal(t, expected, boundaries)
}

func TestTileBoundariesProperties(t *testing.T) {
	for _, height := range []int{1, 57, 200, 399, 400, 1000, 1050, 12345} {
		count := TileCount(height)
		boundaries := TileBoundaries(height, count)

		require.Len(t, boundaries, count, "height %d", height)
		assert.Equal(t, 0, boundaries[0].Top, "height %d", height)
		assert.Equal(t, height, boundaries[count-1].Bottom, "height %d", height)

		base := height / count
		for i, b := range boundaries {
			assert.Greater(t, b.Bottom, b.Top, "height %d tile %d", height, i)
			if i > 0 {
				assert.Equal(t, i*base-10, b.Top, "height %d tile %d", height, i)
			}
		}
	}
}

func TestTileBoundariesLastAbsorbsRemainder(t *testing.T) {
	// 1050/5 = 210 base height; the last tile runs to 1050, not 5*210.
	boundaries := TileBoundaries(1050, 5)
	assert.Equal(t, TileBoundary{Top: 830, Bottom: 1050}, boundaries[4])
	assert.Equal(t, 220, boundaries[4].Height())
}

func TestDecideTransform(t *testing.T) {
	tests := []struct {
		name     string
		hasAlpha bool
		ext      imgpath.OutputExtension
		want     Transform
	}{
		{name: "alpha to jpg flattens", hasAlpha: true, ext: imgpath.ExtJPG, want: FlattenWhite},
		{name: "alpha to png passes through", hasAlpha: true, ext: imgpath.ExtPNG, want: PassThrough},
		{name: "opaque to jpg passes through", hasAlpha: false, ext: imgpath.ExtJPG, want: PassThrough},
		{name: "opaque to png passes through", hasAlpha: false, ext: imgpath.ExtPNG, want: PassThrough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideTransform(tt.hasAlpha, tt.ext))
		})
	}
}
