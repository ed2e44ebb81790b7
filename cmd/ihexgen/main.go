// Command ihexgen encodes a hex-digit payload into Intel HEX text.
//
// The payload is taken from the positional arguments, which are concatenated
// in order; with no arguments it is read from stdin. The result goes to
// stdout or, with -out, to a file, optionally wrapped in a compressed
// archive envelope with -z.
//
// Usage:
//
//	ihexgen [-r bytes] [-z none|zip|zstd|lz4|br] [-out file] [hexdigits...]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	ihex "github.com/logicossoftware/go-ihex"
)

func main() {
	var recordLength int
	var outPath string
	var compName string

	flag.IntVar(&recordLength, "r", ihex.DefaultRecordLength, "payload bytes per data record (1-255)")
	flag.StringVar(&outPath, "out", "", "output file (default stdout)")
	flag.StringVar(&compName, "z", "none", "archive compression: none, zip, zstd, lz4 or br")
	flag.Parse()

	comp, ok := compressionByName(compName)
	if !ok {
		log.Fatalf("unknown compression %q", compName)
	}

	fragments := flag.Args()
	if len(fragments) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		fragments = strings.Fields(string(b))
	}

	text, err := ihex.EncodeFragments(fragments, ihex.WithRecordLength(recordLength))
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	out, err := ihex.Compress(comp, []byte(text))
	if err != nil {
		log.Fatalf("compress: %v", err)
	}

	if outPath == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("write stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", outPath, len(out))
}

func compressionByName(name string) (ihex.Compression, bool) {
	switch name {
	case "none":
		return ihex.CompNone, true
	case "zip":
		return ihex.CompZIP, true
	case "zstd":
		return ihex.CompZSTD, true
	case "lz4":
		return ihex.CompLZ4, true
	case "br":
		return ihex.CompBR, true
	}
	return 0, false
}
