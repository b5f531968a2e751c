// Command niocycles is a small demo harness: it loads a graph from a plain
// edge-list file and prints the simple cycles found by one of the five
// algorithms in this module.
//
// File format: one edge per line, "u v" separated by whitespace. An
// optional first line of exactly "D" or "U" selects directed or undirected;
// without it the graph is undirected for -algo paton and patonbase and
// directed otherwise. Blank lines and lines starting with "#" are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rs0h/niographs/core"
	"github.com/rs0h/niographs/johnson"
	"github.com/rs0h/niographs/paton"
	"github.com/rs0h/niographs/scc"
	"github.com/rs0h/niographs/szwarcfiterlauer"
	"github.com/rs0h/niographs/tarjan"
	"github.com/rs0h/niographs/tiernan"
)

func main() {
	algo := flag.String("algo", "tarjan", "algorithm: tiernan|tarjan|johnson|sl|paton|patonbase|scc")
	path := flag.String("file", "", "edge-list file path (required)")
	flag.Parse()

	if *path == "" {
		log.Fatal("niocycles: -file is required")
	}

	directed := algoWantsDirected(*algo)
	g, err := loadGraph(*path, directed)
	if err != nil {
		log.Fatalf("niocycles: %v", err)
	}

	cycles, err := run(*algo, g)
	if err != nil {
		log.Fatalf("niocycles: %v", err)
	}

	fmt.Printf("%d cycle(s)\n", len(cycles))
	for _, c := range cycles {
		fmt.Println(strings.Join(c, " -> "))
	}
}

// algoWantsDirected reports whether algo only operates on directed graphs.
// An explicit "D"/"U" header line in the input file always wins; this is
// only the default when the file doesn't state one.
func algoWantsDirected(algo string) bool {
	switch algo {
	case "tiernan", "tarjan", "johnson", "sl", "scc":
		return true
	case "paton", "patonbase":
		return false
	default:
		return true
	}
}

func run(algo string, g *core.Graph) ([][]string, error) {
	switch algo {
	case "tiernan":
		a, err := tiernan.NewTiernan(g)
		if err != nil {
			return nil, err
		}
		return a.FindSimpleCycles()
	case "tarjan":
		a, err := tarjan.NewTarjan(g)
		if err != nil {
			return nil, err
		}
		return a.FindSimpleCycles()
	case "johnson":
		a, err := johnson.NewJohnson(g)
		if err != nil {
			return nil, err
		}
		return a.FindSimpleCycles()
	case "sl":
		a, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
		if err != nil {
			return nil, err
		}
		return a.FindSimpleCycles()
	case "paton":
		a, err := paton.NewSimpleCycles(g)
		if err != nil {
			return nil, err
		}
		return a.FindSimpleCycles()
	case "patonbase":
		a, err := paton.NewCycleBase(g)
		if err != nil {
			return nil, err
		}
		return a.FindSimpleCycles()
	case "scc":
		comps, err := scc.FindAllSCCs(g)
		if err != nil {
			return nil, err
		}
		return comps, nil
	default:
		return nil, fmt.Errorf("unknown -algo %q", algo)
	}
}

func loadGraph(path string, defaultDirected bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	directed := defaultDirected
	var g *core.Graph
	first := true

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if first {
			first = false
			switch line {
			case "D":
				directed = true
				g = core.NewGraph(core.WithDirected(true))
				continue
			case "U":
				directed = false
				g = core.NewGraph()
				continue
			}
			g = core.NewGraph(core.WithDirected(directed))
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed edge line %q", line)
		}
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		g = core.NewGraph(core.WithDirected(directed))
	}

	return g, nil
}
