package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/propwave"
	"github.com/delaneyj/propwave/recordmodel"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkListenAll(true)
	benchmarkFiltered(true)
}

var (
	dd    = []int{1, 10, 100, 1_000}
	pp    = []int{1, 10, 100}
	iters = 100
)

type sink struct {
	dirty int
}

func (s *sink) MarkDirty() {
	s.dirty++
}

func propName(i int) string {
	return fmt.Sprintf("prop%d", i)
}

// Every dependent listens to everything, so each event is a full fan-out.
func benchmarkListenAll(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Propwave Listen-All")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	tag := propwave.TagFor("benchmark.Record")
	for _, d := range dd {
		for _, p := range pp {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			props := map[string]any{}
			for i := 0; i < p; i++ {
				props[propName(i)] = 0
			}
			record := recordmodel.New(props)
			scope := propwave.NewScope()
			scope.Provide(tag, record)

			child := scope.Child()
			sinks := make([]*sink, d)
			for i := range sinks {
				sinks[i] = &sink{}
				if _, err := propwave.WatchAll(child, tag, sinks[i]); err != nil {
					log.Fatal(err)
				}
			}

			for i := 0; i < iters; i++ {
				prop := propName(i % p)
				start := time.Now()
				record.Set(prop, i+1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("notify: %d deps * %d props", d, p),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// Dependents are spread one property each, so roughly 1/p of them match any
// given event.
func benchmarkFiltered(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Propwave Filtered")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	tag := propwave.TagFor("benchmark.Record")
	for _, d := range dd {
		for _, p := range pp {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			props := map[string]any{}
			for i := 0; i < p; i++ {
				props[propName(i)] = 0
			}
			record := recordmodel.New(props)
			scope := propwave.NewScope()
			scope.Provide(tag, record)

			child := scope.Child()
			sinks := make([]*sink, d)
			for i := range sinks {
				sinks[i] = &sink{}
				if _, err := propwave.WatchProps(child, tag, sinks[i], propName(i%p)); err != nil {
					log.Fatal(err)
				}
			}

			for i := 0; i < iters; i++ {
				prop := propName(i % p)
				start := time.Now()
				record.Set(prop, i+1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("notify: %d deps * %d props", d, p),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
