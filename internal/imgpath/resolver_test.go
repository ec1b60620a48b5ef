package imgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Semantics
	}{
		{
			name: "responsive with class segment",
			path: "assets/images/widget/pc/hero/banner.png",
			want: Semantics{
				WrapperClass:     "widget",
				IsResponsive:     true,
				RelativeBasePath: "./images/widget",
				SubDirectory:     "hero",
				OutputExtension:  ExtPNG,
			},
		},
		{
			name: "responsive without class segment takes segment after pc",
			path: "assets/images/pc/hero/banner.jpg",
			want: Semantics{
				WrapperClass:     "hero",
				IsResponsive:     true,
				RelativeBasePath: "./images",
				SubDirectory:     "hero",
				OutputExtension:  ExtJPG,
			},
		},
		{
			name: "non-responsive with subdirectory",
			path: "site/public/images/campaign/summer/main.jpg",
			want: Semantics{
				WrapperClass:     "campaign",
				RelativeBasePath: "./images",
				SubDirectory:     "campaign/summer",
				OutputExtension:  ExtJPG,
			},
		},
		{
			name: "image directly under images",
			path: "assets/images/banner.png",
			want: Semantics{
				RelativeBasePath: "./images",
				OutputExtension:  ExtPNG,
			},
		},
		{
			name: "first view segment",
			path: "assets/images/fv/pc/main/hero.png",
			want: Semantics{
				WrapperClass:     "fv",
				IsFirstView:      true,
				IsResponsive:     true,
				RelativeBasePath: "./images/fv",
				SubDirectory:     "main",
				OutputExtension:  ExtPNG,
			},
		},
		{
			name: "uppercase FV segment",
			path: "assets/images/FV/hero.jpg",
			want: Semantics{
				WrapperClass:     "FV",
				IsFirstView:      true,
				RelativeBasePath: "./images",
				SubDirectory:     "FV",
				OutputExtension:  ExtJPG,
			},
		},
		{
			name: "webp source coerced to jpg",
			path: "assets/images/promo/banner.webp",
			want: Semantics{
				WrapperClass:     "promo",
				RelativeBasePath: "./images",
				SubDirectory:     "promo",
				OutputExtension:  ExtJPG,
			},
		},
		{
			name: "uppercase PNG extension kept",
			path: "assets/images/promo/banner.PNG",
			want: Semantics{
				WrapperClass:     "promo",
				RelativeBasePath: "./images",
				SubDirectory:     "promo",
				OutputExtension:  ExtPNG,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sem, err := Resolve(tt.path)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, sem)
		})
	}
}

func TestResolveRequiresImagesSegment(t *testing.T) {
	for _, path := range []string{
		"assets/pictures/banner.png",
		"banner.png",
		"images.png",
	} {
		sem, err := Resolve(path)
		assert.Nil(t, sem, "path %s", path)

		var invalidErr *InvalidPathError
		require.ErrorAs(t, err, &invalidErr, "path %s", path)
	}
}
