package projections

import (
	"github.com/amazon-ion/ion-go/ion"

	"github.com/meridianhq/tcontainer"
)

// Ion renders c as a lossy Amazon Ion text document, grounded on
// fb2cng/convert/kfx's use of ion.MarshalText for a "stable-ish readable
// view" of a Go value via struct reflection.
func Ion(c *tcontainer.Container) ([]byte, error) {
	d := doc{Header: buildHeader(c)}
	for _, v := range c.Values() {
		d.Data = append(d.Data, buildNode(v))
	}
	return ion.MarshalText(d)
}
