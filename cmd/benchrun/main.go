package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Macro perft throughput with one-line outputs.
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	run("go", "run", "./cmd/perft", "-depth", "3", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "4", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "5", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-fen", kiwipete, "-depth", "3", "-label", "Kiwipete")

	// Cross-check the counts against dragontoothmg; a mismatch makes
	// cmd/perft exit nonzero and fails the whole run.
	fmt.Println("\nPerft Verification:")
	for _, args := range [][]string{
		{"-depth", "5", "-label", "Initial", "-verify"},
		{"-fen", kiwipete, "-depth", "4", "-label", "Kiwipete", "-verify"},
		{"-fen", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "-depth", "6", "-label", "EnPassant", "-verify"},
	} {
		if code := run("go", append([]string{"run", "./cmd/perft"}, args...)...); code != 0 {
			os.Exit(code)
		}
	}

	// Search throughput on the start position.
	fmt.Println("\nSearch Performance:")
	run("go", "run", "./cmd/searchbench", "-depth", "5", "-repeat", "3")
	os.Exit(0)
}
