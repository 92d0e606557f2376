// Command convchain synthesizes every sample of a sample set and writes one
// PNG per screenshot.
//
//	convchain -samples resources/samples.xml -resources resources -out out
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/convchain/batch"
	"github.com/katalvlaran/convchain/samples"
)

func main() {
	samplesPath := flag.String("samples", "resources/samples.xml", "Sample set document")
	resources := flag.String("resources", "resources", "Directory holding <name>.png exemplars")
	out := flag.String("out", ".", "Output directory")
	seed := flag.Int64("seed", 0, "Base seed (0 = fixed default)")
	workers := flag.Int("workers", 0, "Parallel jobs (0 = one per CPU)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	set, err := samples.Load(*samplesPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	runner := &batch.Runner{
		Resources: *resources,
		Out:       *out,
		Seed:      *seed,
		Workers:   *workers,
		Logger:    log.New(os.Stdout, "", 0),
	}
	res, err := runner.Run(ctx, set)
	log.Printf("%d images written to %s", len(res), *out)
	if err != nil {
		log.Fatal(err)
	}
}
