package templates

import (
	"bytes"

	qt "github.com/valyala/quicktemplate"
)

// WatchGen emits the contents of typed/watch.go: one WatchN helper per arity
// from 1 up to count.
func WatchGen(count int) string {
	bb := &bytes.Buffer{}
	qw := qt.AcquireWriter(bb)
	defer qt.ReleaseWriter(qw)
	w := qw.N()

	w.S("package typed\n")
	w.S("\n")
	w.S("import (\n")
	w.S("\t\"github.com/delaneyj/propwave\"\n")
	w.S(")\n")

	for n := 1; n <= count; n++ {
		typeParams := numbered("T", n)
		propParams := numbered("p", n)

		w.S("\n")
		w.S("func Watch")
		w.D(n)
		w.S("[")
		w.S(typeParams)
		w.S(" any](scope *propwave.Scope, tag propwave.Tag, ")
		w.S(propParams)
		w.S(" string, fn func(")
		w.S(typeParams)
		w.S(")) (stop func(), err error) {\n")
		w.S("\tw := &watcher{}\n")
		w.S("\tres, err := propwave.WatchProps(scope, tag, w, ")
		w.S(propParams)
		w.S(")\n")
		w.S("\tif err != nil {\n")
		w.S("\t\treturn nil, err\n")
		w.S("\t}\n")
		w.S("\tnode := res.Node\n")
		w.S("\tw.run = func() {\n")
		w.S("\t\tprops, ok := node.Value().(map[string]any)\n")
		w.S("\t\tif !ok {\n")
		w.S("\t\t\treturn\n")
		w.S("\t\t}\n")
		for i := 0; i < n; i++ {
			w.S("\t\tv")
			w.D(i)
			w.S(", _ := props[p")
			w.D(i)
			w.S("].(T")
			w.D(i)
			w.S(")\n")
		}
		w.S("\t\tfn(")
		w.S(numbered("v", n))
		w.S(")\n")
		w.S("\t}\n")
		w.S("\tw.run()\n")
		w.S("\treturn func() { node.Detach(w) }, nil\n")
		w.S("}\n")
	}

	return bb.String()
}
