package main

import (
	_ "embed"

	"j5.nz/nostd/std/program"
)

//go:embed hello.yaml
var cfg []byte

func main() {
	program.Main(cfg, (*program.Runner).Hello)
}
