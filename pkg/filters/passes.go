package filters

import (
	"github.com/user/pixelfx/pkg/blur"
	"github.com/user/pixelfx/pkg/pixbuf"
	"github.com/user/pixelfx/pkg/thinning"
)

// Thinning binarizes buf and erodes it for ThinningIterations passes.
func Thinning(buf *pixbuf.Buffer, params *Params) error {
	threshold := params.ThinningThreshold
	if threshold <= 0 {
		threshold = thinning.DefaultThreshold
	}
	return thinning.Thin(buf, params.ThinningIterations, threshold)
}

// Blur applies the three-pass box approximation of a gaussian with BlurSigma.
func Blur(buf *pixbuf.Buffer, params *Params) error {
	return blur.Gaussian(buf, params.BlurSigma)
}
