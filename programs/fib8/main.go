package main

import (
	_ "embed"

	"j5.nz/nostd/std/program"
)

//go:embed fib8.yaml
var cfg []byte

func main() {
	program.Main(cfg, (*program.Runner).Fib)
}
