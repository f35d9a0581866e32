package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/inkpond/shellcut/internal/detect"
	"github.com/inkpond/shellcut/internal/pipeline"
	"github.com/inkpond/shellcut/internal/raster"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("shellcut %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	in := flag.String("in", "", "input image file (png, jpeg, gif, webp)")
	out := flag.String("out", "", "output PNG file; omit to print the data URI to stdout")
	strategy := flag.String("strategy", "flood", "border detection strategy: flood or circle")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := pipeline.DefaultOptions()
	switch *strategy {
	case "flood":
		opts.Detector = &detect.FloodDetector{}
	case "circle":
		opts.Detector = &detect.CircleDetector{}
	default:
		log.Fatalf("unknown strategy %q (want flood or circle)", *strategy)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	result, err := pipeline.Extract(data, opts)
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	log.Printf("strategy=%s shellDetected=%v", opts.Detector.Name(), result.ShellDetected)
	if result.Hint != "" {
		log.Printf("hint: %s", result.Hint)
	}

	if *out == "" {
		fmt.Println(result.ImageData)
		return
	}

	png, err := raster.PNGBytes(result.ImageData)
	if err != nil {
		log.Fatalf("decode result: %v", err)
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
}
