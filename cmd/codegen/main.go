package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/propwave/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-N typed watch helpers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Number of watched-property arities to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated helpers to",
				Value: "typed/watch.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for typed watch helpers started!")
	defer func() {
		log.Printf("Codegen for typed watch helpers finished in %v", time.Since(start))
	}()

	arityCount := cmd.Uint(arityCountKey)
	output := cmd.String(outputKey)

	contents := templates.WatchGen(int(arityCount))
	if err := os.WriteFile(output, []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
