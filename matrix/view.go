// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/scalar"
)

// viewOf is embedded by the single-base views. Views never own data and
// never change topology after construction.
type viewOf[N any] struct {
	base MatrixStore[N]
}

func (v viewOf[N]) Field() scalar.Field[N] { return v.base.Field() }

// supplyView is the SupplyTo of a view without a cheaper delegation.
func supplyView[N any](s MatrixStore[N], target TransformableRegion[N]) {
	supplyElements(s, target, concurrency.Default())
}
