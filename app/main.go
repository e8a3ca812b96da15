package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/PJBoy/karen/app/karen"
)

func usage(program string) string {
	if program == "" {
		program = "<this executable>"
	}
	return program + " <videos directory> <subtitles directory> <offsets filepath>\n"
}

func main() {
	var cachePath string
	var rebuildCache bool
	flag.StringVar(&cachePath, "cache", "", "path to the parsed-subtitle cache file")
	flag.BoolVar(&rebuildCache, "rebuild-cache", false, "ignore any existing cache file and re-parse the subtitles directory")
	flag.Parse()

	// The first positional argument (videos directory) is validated but,
	// matching the original, never otherwise consulted: nothing in the
	// query path touches video files.
	args := flag.Args()
	if len(args) != 3 {
		fmt.Print(usage(os.Args[0]))
		os.Exit(1)
	}
	subtitlesDirectory, offsetsFilepath := args[1], args[2]

	logger := log.New(os.Stderr, "karen: ", log.LstdFlags)

	offsets, err := karen.LoadOffsets(offsetsFilepath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	corpus, err := karen.Load(subtitlesDirectory, offsets, cachePath, rebuildCache, logger)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := karen.RunQueryLoop(os.Stdin, os.Stdout, corpus, logger); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}
