package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/propwave"
	"github.com/delaneyj/propwave/recordmodel"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting propwave scaling report, please wait...")
	defer log.Print("Finished propwave scaling report")

	scalingCfgs := []scalingTestConfig{
		{
			name:       "single widget",
			dependents: 1,
			properties: 2,
			watched:    1,
			iterations: 1_000_000,
		},
		{
			name:       "small panel",
			dependents: 10,
			properties: 8,
			watched:    2,
			iterations: 300_000,
		},
		{
			name:       "dense form",
			dependents: 100,
			properties: 32,
			watched:    4,
			iterations: 60_000,
		},
		{
			name:       "large page",
			dependents: 1_000,
			properties: 64,
			watched:    4,
			iterations: 6_000,
		},
		{
			name:       "listen-all heavy",
			dependents: 1_000,
			properties: 8,
			watched:    0, // 0 means every dependent listens to everything
			iterations: 2_000,
		},
	}

	type results struct {
		notified int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"engine", "deps", "props", "watched",
		"nTimes", "test", "time",
		"notifyRate", "title",
	})

	testRepeats := 5
	for _, cfg := range scalingCfgs {
		log.Printf("Running '%s' config", cfg.name)

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			notified, duration := runScaling(&cfg)

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.notified = notified
			}
		}

		makeTitle := func() string {
			if cfg.watched == 0 {
				return fmt.Sprintf("%d deps listen-all over %d props", cfg.dependents, cfg.properties)
			}
			return fmt.Sprintf("%d deps watch %d of %d props", cfg.dependents, cfg.watched, cfg.properties)
		}

		notifyRate := float64(bestResult.notified) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			"propwave",
			fmt.Sprint(cfg.dependents),
			fmt.Sprint(cfg.properties),
			fmt.Sprint(cfg.watched),
			humanize.Comma(cfg.iterations),
			cfg.name,
			fmt.Sprint(bestResult.duration),
			humanize.Comma(int64(notifyRate)),
			makeTitle(),
		})
	}
	table.Render() // Send output
}

type scalingTestConfig struct {
	name       string // friendly name for the test, should be unique
	dependents int    // number of dependents attached below the provider
	properties int    // number of properties on the record
	watched    int    // properties per dependent, 0 for listen-all
	iterations int64  // number of events to fire
}

type countingDependent struct {
	notified *int64
}

func (d *countingDependent) MarkDirty() {
	*d.notified++
}

// Build a provider scope with one record, attach the configured dependents
// below it, then hammer the record and count deliveries.
func runScaling(cfg *scalingTestConfig) (notified int64, duration time.Duration) {
	props := map[string]any{}
	for i := 0; i < cfg.properties; i++ {
		props[scalingPropName(i)] = 0
	}
	record := recordmodel.New(props)

	tag := propwave.TagFor("scaling.Record")
	root := propwave.NewScope()
	root.Provide(tag, record)
	child := root.Child()

	for i := 0; i < cfg.dependents; i++ {
		dep := &countingDependent{notified: &notified}
		if cfg.watched == 0 {
			if _, err := propwave.WatchAll(child, tag, dep); err != nil {
				log.Fatal(err)
			}
			continue
		}
		watched := make([]string, cfg.watched)
		for j := range watched {
			watched[j] = scalingPropName((i + j) % cfg.properties)
		}
		if _, err := propwave.WatchProps(child, tag, dep, watched...); err != nil {
			log.Fatal(err)
		}
	}

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		prop := scalingPropName(int(i) % cfg.properties)
		record.Set(prop, i+1)
	}
	duration = time.Since(start)

	return notified, duration
}

func scalingPropName(i int) string {
	return fmt.Sprintf("prop%d", i)
}
