// Example normalize shows how to turn sequence files into the YAML schema
// documents read by the resolver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/TuftsBCB/foldio/schema"
)

var flagFasta = false

func main() {
	if flag.NArg() < 1 {
		usage()
	}
	for _, fp := range flag.Args() {
		f, err := os.Open(fp)
		if err != nil {
			log.Fatalf("%s", err)
		}
		sch, err := schema.Normalize(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %s", fp, err)
		}

		fmt.Printf("# %s\n", fp)
		if flagFasta {
			if err := schema.WriteFasta(os.Stdout, sch.Sequences); err != nil {
				log.Fatalf("%s: %s", fp, err)
			}
			continue
		}
		bs, err := sch.YAML()
		if err != nil {
			log.Fatalf("%s: %s", fp, err)
		}
		os.Stdout.Write(bs)
	}
}

func init() {
	log.SetFlags(0)

	flag.BoolVar(&flagFasta, "fasta", flagFasta,
		"When set, the normalized records are written back as FASTA "+
			"instead of YAML.")
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] fasta-file [ fasta-file ... ]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}
