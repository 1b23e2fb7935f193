// Example confidence reads PDB files written by this package and reports the
// mean and minimum B-factor (the predicted confidence) of every chain. Files
// are read by a pool of workers, one per CPU by default.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"

	"github.com/TuftsBCB/foldio/pdb"
)

var flagWorkers = runtime.NumCPU()

func init() {
	log.SetFlags(0)

	flag.IntVar(&flagWorkers, "workers", flagWorkers,
		"The number of workers to use to read PDB files.")
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] pdb-file [ pdb-file ... ]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}

// job is a file to read, along with its position in the arguments.
type job struct {
	index int
	file  string
}

type summary struct {
	job
	lines []string
	err   error
}

func worker(jobs chan job, results chan summary) {
	for j := range jobs {
		lines, err := summarize(j.file)
		results <- summary{j, lines, err}
	}
}

// summarize returns one line per chain tag, in the order the chains appear.
func summarize(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pf, err := pdb.Read(f)
	if err != nil {
		return nil, err
	}

	type stats struct {
		atoms    int
		sum, min float64
		het      bool
	}
	var order []string
	chains := make(map[string]*stats)
	for _, atom := range pf.Atoms {
		st, ok := chains[atom.ChainTag]
		if !ok {
			st = &stats{min: atom.BFactor, het: atom.Het}
			chains[atom.ChainTag] = st
			order = append(order, atom.ChainTag)
		}
		st.atoms++
		st.sum += atom.BFactor
		if atom.BFactor < st.min {
			st.min = atom.BFactor
		}
	}

	lines := make([]string, 0, len(order))
	for _, tag := range order {
		st := chains[tag]
		kind := "polymer"
		if st.het {
			kind = "ligand"
		}
		lines = append(lines, fmt.Sprintf("%s\t%s\t%d atoms\tmean %.2f\tmin %.2f",
			tag, kind, st.atoms, st.sum/float64(st.atoms), st.min))
	}
	return lines, nil
}

func main() {
	if flag.NArg() < 1 {
		usage()
	}
	if flagWorkers < 1 {
		flagWorkers = 1
	}

	jobs := make(chan job, 100)
	results := make(chan summary, 100)
	for i := 0; i < flagWorkers; i++ {
		go worker(jobs, results)
	}
	go func() {
		for i, file := range flag.Args() {
			jobs <- job{i, file}
		}
		close(jobs)
	}()

	// Results arrive in any order; print them in the order of the arguments.
	all := make([]summary, flag.NArg())
	for range flag.Args() {
		s := <-results
		all[s.index] = s
	}

	failed := false
	for _, s := range all {
		if s.err != nil {
			log.Printf("%s error: %s", s.file, s.err)
			failed = true
			continue
		}
		fmt.Println(s.file)
		for _, line := range s.lines {
			fmt.Printf("\t%s\n", line)
		}
	}
	if failed {
		os.Exit(1)
	}
}
