// Package program is the driver shared by the example programs: it wires the
// generator and formatter to the syscall gateway and maps failures to exit
// statuses.
package program

import (
	"errors"

	"j5.nz/nostd/std/config"
	"j5.nz/nostd/std/fib"
	"j5.nz/nostd/std/hex"
	"j5.nz/nostd/std/logger"
	"j5.nz/nostd/std/sys"
)

// Exit statuses.
const (
	StatusOK       = 0
	StatusOverflow = 1
	StatusFailure  = 2 // write failed or the embedded config is invalid
)

var (
	overflowMsg   = []byte("Overflow\n")
	writeErrorMsg = []byte("write error\n")
	helloMsg      = []byte("Hello, World!\n")
)

// Runner executes one program against a Gateway. Its methods return the
// exit status and never call Exit themselves.
type Runner struct {
	Gateway sys.Gateway
	Log     *logger.Logger
}

// NewRunner returns a Runner logging to fd 2 of g at cfg.LogLevel.
func NewRunner(g sys.Gateway, cfg config.Config) *Runner {
	return &Runner{
		Gateway: g,
		Log:     logger.New(sys.NewFile(g, sys.Stderr), cfg.LogLevel),
	}
}

// Run parses the embedded config and runs fn with a Runner over g.
func Run(g sys.Gateway, cfgYAML []byte, fn func(*Runner, config.Config) int) int {
	cfg, err := config.Parse(cfgYAML)
	if err != nil {
		// Best effort: the status already says what happened.
		_ = sys.WriteAll(g, sys.Stderr, append([]byte(err.Error()), '\n'))
		return StatusFailure
	}
	return fn(NewRunner(g, cfg), cfg)
}

// Main runs fn on the raw gateway and terminates the process with its status.
func Main(cfgYAML []byte, fn func(*Runner, config.Config) int) {
	var g sys.Raw
	g.Exit(Run(g, cfgYAML, fn))
}

// Fib prints the first cfg.TermLimit Fibonacci terms, one per line, and
// reports overflow of the cfg.Width-bit generator with "Overflow\n" on fd 2.
func (r *Runner) Fib(cfg config.Config) int {
	log := r.log().With("program", "fib", "limit", cfg.TermLimit, "width", cfg.Width)
	switch cfg.Width {
	case 8:
		return runFib(r, log, fib.New[uint8](cfg.TermLimit), cfg.Radix)
	case 16:
		return runFib(r, log, fib.New[uint16](cfg.TermLimit), cfg.Radix)
	case 32:
		return runFib(r, log, fib.New[uint32](cfg.TermLimit), cfg.Radix)
	default:
		return runFib(r, log, fib.New[uint64](cfg.TermLimit), cfg.Radix)
	}
}

func runFib[T fib.Unsigned](r *Runner, log *logger.Logger, g *fib.Generator[T], radix config.Radix) int {
	for {
		v, err := g.Next()
		if errors.Is(err, fib.ErrDone) {
			log.Debug("done", "terms", g.Count())
			return StatusOK
		}
		if err != nil {
			log.ErrorWithErr("generator halted", err, "terms", g.Count())
			if err := sys.WriteAll(r.Gateway, sys.Stderr, overflowMsg); err != nil {
				return r.writeFailed(err)
			}
			return StatusOverflow
		}
		if err := r.emit(uint64(v), radix); err != nil {
			return r.writeFailed(err)
		}
	}
}

// Count prints 0 through cfg.TermLimit-1, one per line.
func (r *Runner) Count(cfg config.Config) int {
	for i := 0; i < cfg.TermLimit; i++ {
		if err := r.emit(uint64(i), cfg.Radix); err != nil {
			return r.writeFailed(err)
		}
	}
	return StatusOK
}

// Hello writes a greeting to fd 1.
func (r *Runner) Hello(config.Config) int {
	if err := sys.WriteAll(r.Gateway, sys.Stdout, helloMsg); err != nil {
		return r.writeFailed(err)
	}
	return StatusOK
}

// Loop produces no output; its exit status is the result of a short loop.
func (r *Runner) Loop(config.Config) int {
	a := 6
	for i := 0; i < 3; i++ {
		a = a + 1
	}
	r.log().Debug("loop", "result", a)
	return a
}

func (r *Runner) emit(v uint64, radix config.Radix) error {
	var buf hex.Buffer
	var n int
	var err error
	switch radix {
	case config.Hex:
		n, err = hex.Format(v, buf[:])
	default:
		return errors.New("program: unsupported radix " + radix.String())
	}
	if err != nil {
		return err
	}
	return sys.WriteAll(r.Gateway, sys.Stdout, buf[:n])
}

func (r *Runner) writeFailed(err error) int {
	r.log().ErrorWithErr("write failed", err)
	_ = sys.WriteAll(r.Gateway, sys.Stderr, writeErrorMsg)
	return StatusFailure
}

func (r *Runner) log() *logger.Logger {
	if r.Log == nil {
		return logger.Discard()
	}
	return r.Log
}
