package typed

import (
	"github.com/delaneyj/propwave"
)

func Watch1[T0 any](scope *propwave.Scope, tag propwave.Tag, p0 string, fn func(T0)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		fn(v0)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}

func Watch2[T0, T1 any](scope *propwave.Scope, tag propwave.Tag, p0, p1 string, fn func(T0, T1)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0, p1)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		v1, _ := props[p1].(T1)
		fn(v0, v1)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}

func Watch3[T0, T1, T2 any](scope *propwave.Scope, tag propwave.Tag, p0, p1, p2 string, fn func(T0, T1, T2)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0, p1, p2)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		v1, _ := props[p1].(T1)
		v2, _ := props[p2].(T2)
		fn(v0, v1, v2)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}

func Watch4[T0, T1, T2, T3 any](scope *propwave.Scope, tag propwave.Tag, p0, p1, p2, p3 string, fn func(T0, T1, T2, T3)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		v1, _ := props[p1].(T1)
		v2, _ := props[p2].(T2)
		v3, _ := props[p3].(T3)
		fn(v0, v1, v2, v3)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}

func Watch5[T0, T1, T2, T3, T4 any](scope *propwave.Scope, tag propwave.Tag, p0, p1, p2, p3, p4 string, fn func(T0, T1, T2, T3, T4)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0, p1, p2, p3, p4)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		v1, _ := props[p1].(T1)
		v2, _ := props[p2].(T2)
		v3, _ := props[p3].(T3)
		v4, _ := props[p4].(T4)
		fn(v0, v1, v2, v3, v4)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}

func Watch6[T0, T1, T2, T3, T4, T5 any](scope *propwave.Scope, tag propwave.Tag, p0, p1, p2, p3, p4, p5 string, fn func(T0, T1, T2, T3, T4, T5)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0, p1, p2, p3, p4, p5)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		v1, _ := props[p1].(T1)
		v2, _ := props[p2].(T2)
		v3, _ := props[p3].(T3)
		v4, _ := props[p4].(T4)
		v5, _ := props[p5].(T5)
		fn(v0, v1, v2, v3, v4, v5)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}

func Watch7[T0, T1, T2, T3, T4, T5, T6 any](scope *propwave.Scope, tag propwave.Tag, p0, p1, p2, p3, p4, p5, p6 string, fn func(T0, T1, T2, T3, T4, T5, T6)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0, p1, p2, p3, p4, p5, p6)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		v1, _ := props[p1].(T1)
		v2, _ := props[p2].(T2)
		v3, _ := props[p3].(T3)
		v4, _ := props[p4].(T4)
		v5, _ := props[p5].(T5)
		v6, _ := props[p6].(T6)
		fn(v0, v1, v2, v3, v4, v5, v6)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}

func Watch8[T0, T1, T2, T3, T4, T5, T6, T7 any](scope *propwave.Scope, tag propwave.Tag, p0, p1, p2, p3, p4, p5, p6, p7 string, fn func(T0, T1, T2, T3, T4, T5, T6, T7)) (stop func(), err error) {
	w := &watcher{}
	res, err := propwave.WatchProps(scope, tag, w, p0, p1, p2, p3, p4, p5, p6, p7)
	if err != nil {
		return nil, err
	}
	node := res.Node
	w.run = func() {
		props, ok := node.Value().(map[string]any)
		if !ok {
			return
		}
		v0, _ := props[p0].(T0)
		v1, _ := props[p1].(T1)
		v2, _ := props[p2].(T2)
		v3, _ := props[p3].(T3)
		v4, _ := props[p4].(T4)
		v5, _ := props[p5].(T5)
		v6, _ := props[p6].(T6)
		v7, _ := props[p7].(T7)
		fn(v0, v1, v2, v3, v4, v5, v6, v7)
	}
	w.run()
	return func() { node.Detach(w) }, nil
}
