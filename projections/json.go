package projections

import (
	"encoding/json"

	"github.com/meridianhq/tcontainer"
)

// doc is the top-level JSON shape: header fields plus the data node list.
type doc struct {
	Header []node `json:"header"`
	Data   []node `json:"data"`
}

// JSON renders c as a lossy JSON document: composites nest under
// "children", scalars carry a "literal" string. Standard library
// encoding/json is used here deliberately — the codec package already
// reaches for it for the same concern (see DESIGN.md), and no third-party
// JSON library appears anywhere in the example pack this module draws on.
func JSON(c *tcontainer.Container) ([]byte, error) {
	d := doc{Header: buildHeader(c)}
	for _, v := range c.Values() {
		d.Data = append(d.Data, buildNode(v))
	}
	return json.Marshal(d)
}
