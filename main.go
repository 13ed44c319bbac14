package main

import (
	"log"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"img2c/pkg/convert"
)

var src = flag.String("src", "", "source directory containing images")
var out = flag.String("out", "", "output directory for generated headers")
var verbose = flag.BoolP("verbose", "v", false, "log every file instead of showing a progress bar")

func main() {
	flag.Parse()

	if *src == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	var stats *convert.Stats

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			newLogger,
			newWalker,
		),
		fx.Invoke(func(w *convert.Walker) error {
			var err error
			stats, err = w.Run()
			return err
		}),
	)

	if err := app.Err(); err != nil {
		log.Fatal(err)
	}

	if stats.Errors > 0 {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !*verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func newWalker(logger *zap.Logger) (*convert.Walker, error) {
	srcFs, err := convert.NewSrcFs(*src)
	if err != nil {
		return nil, err
	}

	outFs, err := convert.NewOutFs(*out)
	if err != nil {
		return nil, err
	}

	var opts []convert.Option
	if !*verbose {
		opts = append(opts, convert.WithProgress())
	}

	return convert.NewWalker(srcFs, outFs, logger, opts...), nil
}
