// Command lumfetch fetches and decodes an image URL without opening a
// window, for scripting and for debugging the load pipeline. It prints a
// one-line description of the image and can re-encode it to PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"lumiere/pkg/images"
	"lumiere/pkg/resource"
)

func main() {
	output := flag.String("o", "", "write the decoded image to this file as PNG")
	timeout := flag.Duration("t", resource.DefaultTimeout, "fetch timeout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lumfetch [flags] <url>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	url := flag.Arg(0)

	fetcher := resource.NewHTTPFetcher()
	fetcher.SetTimeout(*timeout)

	start := time.Now()
	body, contentType, err := fetcher.Fetch(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching: %v\n", err)
		os.Exit(1)
	}

	img, info, err := images.Decode(body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", info.Describe())
	if contentType != "" {
		fmt.Printf("Content-Type: %s\n", contentType)
	}
	fmt.Printf("Fetched in %v\n", time.Since(start).Round(time.Millisecond))

	if *output == "" {
		return
	}
	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved to %s\n", *output)
}
