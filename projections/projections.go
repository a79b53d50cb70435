// Package projections offers lossy JSON/XML/Ion renderings of a Container,
// gated behind this separate import so the core stays free of their
// dependencies (spec §6 "Projections (optional)"). None of these round-trip
// bit-identically; all of them preserve the value tree under structural
// equality, which is the contract §6 asks of a projection.
package projections

import (
	"encoding/base64"

	"github.com/meridianhq/tcontainer"
)

// node is the shared intermediate form every projection builds from a
// Container before handing off to its target encoder.
type node struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Literal  string `json:"literal,omitempty"`
	Children []node `json:"children,omitempty"`
}

func buildNode(v tcontainer.Value) node {
	n := node{Name: v.Name(), Type: v.Tag().String()}
	switch v.Tag() {
	case tcontainer.TagContainer:
		c, err := v.AsContainer()
		if err != nil {
			return n
		}
		for _, child := range c.Values() {
			n.Children = append(n.Children, buildNode(child))
		}
	case tcontainer.TagArray:
		items, err := v.Children()
		if err != nil {
			return n
		}
		for _, child := range items {
			n.Children = append(n.Children, buildNode(child))
		}
	case tcontainer.TagBytes:
		b, err := v.AsBytes()
		if err == nil {
			n.Literal = base64.StdEncoding.EncodeToString(b)
		}
	default:
		s, err := v.AsString()
		if err == nil {
			n.Literal = s
		}
	}
	return n
}

func buildHeader(c *tcontainer.Container) []node {
	return []node{
		{Name: "source_id", Type: "header", Literal: c.SourceID()},
		{Name: "source_sub_id", Type: "header", Literal: c.SourceSubID()},
		{Name: "target_id", Type: "header", Literal: c.TargetID()},
		{Name: "target_sub_id", Type: "header", Literal: c.TargetSubID()},
		{Name: "message_type", Type: "header", Literal: c.MessageType()},
	}
}
