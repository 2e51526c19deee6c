// Package typed layers arity-N typed watch helpers over a record-backed
// propagation node: WatchN attaches a dependent filtered to N properties and
// calls back with the current values cast to the declared types. watch.go is
// produced by cmd/codegen.
package typed

type watcher struct {
	run func()
}

func (w *watcher) MarkDirty() {
	if w.run != nil {
		w.run()
	}
}
