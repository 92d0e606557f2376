// Command convchain-web synthesizes one sample over and over and streams the
// field to browsers after every sweep.
//
//	/ws         binary frames (see package web)
//	/frame.png  latest field
//	/metrics    Prometheus metrics
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/convchain/batch"
	"github.com/katalvlaran/convchain/convchain"
	"github.com/katalvlaran/convchain/samples"
	"github.com/katalvlaran/convchain/web"
)

func main() {
	samplesPath := flag.String("samples", "resources/samples.xml", "Sample set document")
	resources := flag.String("resources", "resources", "Directory holding <name>.png exemplars")
	name := flag.String("sample", "", "Sample to synthesize (default: first in the set)")
	addr := flag.String("addr", ":3000", "http service address")
	seed := flag.Int64("seed", 0, "Base seed (0 = fixed default)")
	pause := flag.Duration("pause", 2*time.Second, "Pause between runs")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	set, err := samples.Load(*samplesPath)
	if err != nil {
		log.Fatal(err)
	}
	s := set.Samples[0]
	if *name != "" {
		var ok bool
		if s, ok = set.Lookup(*name); !ok {
			log.Fatalf("sample %q not found in %s", *name, *samplesPath)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics, err := batch.NewMetrics(reg)
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	hub := web.NewHub(logger)
	defer hub.Close()

	runner := &batch.Runner{
		Resources: *resources,
		Seed:      *seed,
		Logger:    logger,
		Metrics:   metrics,
		OnFrame:   func(f batch.Frame) { hub.Publish(web.FrameFrom(f)) },
	}
	exemplar, err := runner.Exemplar(s.Name)
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.Handle("/frame.png", handlers.CompressHandler(http.HandlerFunc(hub.SnapshotHandler)))
	mux.Handle("/metrics", handlers.CompressHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	srv := &http.Server{Addr: *addr, Handler: handlers.LoggingHandler(os.Stdout, mux)}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Println(err)
		}
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	for shot := 0; ctx.Err() == nil; shot++ {
		job := batch.Job{
			ID:     uuid.New(),
			Pass:   1,
			Shot:   shot,
			Sample: s,
			Seed:   convchain.DeriveSeed(*seed, uint64(shot)),
		}
		if _, err := runner.RunJob(ctx, job, exemplar); err != nil && ctx.Err() == nil {
			log.Fatal(err)
		}
		select {
		case <-ctx.Done():
		case <-time.After(*pause):
		}
	}
}
