// File: table.go
package access

import (
	"math/big"

	"github.com/go-dnnf/decdnnf/count"
)

// FromTable retrieves the k-th model in structural order from an
// already-built count.Table, skipping the Table construction Access would
// otherwise repeat on every call. The sample package uses this to draw many
// models against one Table instead of rebuilding it per draw.
func FromTable(tb *count.Table, k *big.Int) (Model, error) {
	return accessStructural(tb, k)
}
