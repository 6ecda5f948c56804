package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/Vedang-P/chess-engine/chess"
	"github.com/Vedang-P/chess-engine/engine"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN to search (defaults to initial position)")
	depth := flag.Int("depth", 6, "maximum search depth in plies")
	timeMS := flag.Int("time", 60000, "time budget per search in milliseconds")
	repeat := flag.Int("repeat", 1, "number of searches to run")
	cpuProf := flag.String("cpuprofile", "", "write CPU profile to file")
	memProf := flag.String("memprofile", "", "write heap profile to file after run")
	flag.Parse()

	if *depth < 1 {
		fmt.Fprintln(os.Stderr, "-depth must be >= 1")
		os.Exit(2)
	}

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	fmt.Printf("searchbench: fen=%q depth=%d time=%dms repeat=%d\n", *fen, *depth, *timeMS, *repeat)

	startAll := time.Now()
	for i := 0; i < *repeat; i++ {
		var eng engine.SearchEngine
		iterStart := time.Now()
		result, err := eng.Search(board, *depth, *timeMS, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "search error: %v\n", err)
			os.Exit(2)
		}
		iterElapsed := time.Since(iterStart)

		best := "0000"
		if result.BestMove != chess.NoMove {
			best = result.BestMove.String()
		}
		fmt.Printf("iteration %d: bestmove %s depth=%d score=%d nodes=%d nps=%d time=%v\n",
			i+1, best, result.Depth, result.Score, result.Nodes, result.NPS, iterElapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
