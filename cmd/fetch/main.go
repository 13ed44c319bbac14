package main

import (
	"log"
	"net/url"
	"path"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"img2c/pkg/convert"
)

var imgURL = flag.String("url", "", "image url to fetch")
var out = flag.String("out", ".", "output directory for the generated header")

func main() {
	flag.Parse()

	if *imgURL == "" {
		log.Fatal("missing --url")
	}

	logger, _ := zap.NewDevelopment()

	bs, err := convert.NewFetcher(logger).Get(*imgURL)
	if err != nil {
		log.Fatal(err)
	}

	u, err := url.Parse(*imgURL)
	if err != nil {
		log.Fatal(err)
	}
	name := path.Base(u.Path)

	text, err := convert.Bytes(name, bs)
	if err != nil {
		log.Fatal(err)
	}

	outFs, err := convert.NewOutFs(*out)
	if err != nil {
		log.Fatal(err)
	}

	target := strings.TrimSuffix(name, path.Ext(name)) + ".h"
	if err := convert.WriteHeader(outFs, target, text); err != nil {
		log.Fatal(err)
	}

	logger.With(zap.String("file", target)).Info("header written")
}
