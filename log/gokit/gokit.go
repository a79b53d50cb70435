// Package gokit adapts a go-kit log.Logger to tcontainer.Logger, grounded
// on kolide-launcher's use of go-kit/kit's log package as its structured
// logging backbone.
package gokit

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/meridianhq/tcontainer"
)

type Logger struct{ L log.Logger }

var _ tcontainer.Logger = Logger{}

func (g Logger) Debug(msg string, f tcontainer.Fields) { g.log(level.Debug(g.L), msg, f) }
func (g Logger) Info(msg string, f tcontainer.Fields)  { g.log(level.Info(g.L), msg, f) }
func (g Logger) Warn(msg string, f tcontainer.Fields)  { g.log(level.Warn(g.L), msg, f) }
func (g Logger) Error(msg string, f tcontainer.Fields) { g.log(level.Error(g.L), msg, f) }

func (g Logger) log(l log.Logger, msg string, f tcontainer.Fields) {
	kv := make([]any, 0, 2+2*len(f))
	kv = append(kv, "msg", msg)
	for k, v := range f {
		kv = append(kv, k, v)
	}
	_ = l.Log(kv...)
}
