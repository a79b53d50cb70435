package projections

import (
	"github.com/beevik/etree"

	"github.com/meridianhq/tcontainer"
)

// XML renders c as a lossy XML document using beevik/etree, grounded on
// fb2cng's use of etree to build documents element-by-element rather than
// through struct tags.
func XML(c *tcontainer.Container) ([]byte, error) {
	doc := etree.NewDocument()
	doc.Indent(2)

	root := doc.CreateElement("container")
	header := root.CreateElement("header")
	for _, h := range buildHeader(c) {
		header.CreateElement(h.Name).SetText(h.Literal)
	}

	data := root.CreateElement("data")
	for _, v := range c.Values() {
		appendXMLNode(data, buildNode(v))
	}

	return doc.WriteToBytes()
}

func appendXMLNode(parent *etree.Element, n node) {
	el := parent.CreateElement("value")
	el.CreateAttr("name", n.Name)
	el.CreateAttr("type", n.Type)
	if len(n.Children) > 0 {
		for _, child := range n.Children {
			appendXMLNode(el, child)
		}
		return
	}
	el.SetText(n.Literal)
}
