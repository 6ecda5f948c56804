package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/Vedang-P/chess-engine/chess"
	"github.com/Vedang-P/chess-engine/engine"
)

func usage() {
	fmt.Fprint(os.Stderr, `Usage: chess-engine [-fen FEN] [command]

Commands:
  perft DEPTH [-divide]         Count leaf nodes to the given depth
  search [-depth N] [-time MS]  Run an iterative deepening search

With no command the position is printed.
`)
	os.Exit(2)
}

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN position")
	flag.Usage = usage
	flag.Parse()

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Print(board.String())
		fmt.Println(board.ToFEN())
		return
	}

	switch args[0] {
	case "perft":
		runPerft(board, args[1:])
	case "search":
		runSearch(board, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage()
	}
}

func runPerft(board *chess.Board, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "perft requires a depth argument")
		os.Exit(2)
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid depth %q\n", args[0])
		os.Exit(2)
	}

	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	divide := fs.Bool("divide", false, "Show per-move split")
	_ = fs.Parse(args[1:])

	if *divide {
		div, err := chess.PerftDivide(board, depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "PerftDivide error: %v\n", err)
			os.Exit(2)
		}
		moves := maps.Keys(div)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		return
	}
	fmt.Println(chess.Perft(board, depth))
}

func runSearch(board *chess.Board, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	depth := fs.Int("depth", 5, "Max search depth")
	timeMS := fs.Int("time", 3000, "Time limit in ms")
	_ = fs.Parse(args)

	var eng engine.SearchEngine
	result, err := eng.Search(board, *depth, *timeMS, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "search error: %v\n", err)
		os.Exit(2)
	}

	best := "0000"
	if result.BestMove != chess.NoMove {
		best = result.BestMove.String()
	}
	fmt.Printf("bestmove %s\n", best)
	fmt.Printf("depth %d score %d nodes %d nps %d\n", result.Depth, result.Score, result.Nodes, result.NPS)
	fmt.Println("pv", strings.Join(engine.MoveStrings(result.PV), " "))
}
