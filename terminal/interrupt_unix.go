//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
)

// interruptGuard swallows SIGINT while a session owns the terminal so Ctrl+C cannot
// leave it in raw mode
type interruptGuard struct {
	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}
	count  atomic.Int64
}

func newInterruptGuard() *interruptGuard {
	return &interruptGuard{
		sigCh:  make(chan os.Signal, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// start begins intercepting SIGINT
func (g *interruptGuard) start() {
	signal.Notify(g.sigCh, os.Interrupt)
	go g.watchLoop()
}

// stop restores the default disposition
func (g *interruptGuard) stop() {
	signal.Stop(g.sigCh)
	close(g.stopCh)
	<-g.doneCh
}

// suppressed returns the number of interrupts swallowed so far
func (g *interruptGuard) suppressed() int64 {
	return g.count.Load()
}

func (g *interruptGuard) watchLoop() {
	defer close(g.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mINTERRUPT HANDLER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-g.stopCh:
			return
		case <-g.sigCh:
			n := g.count.Add(1)
			log.Printf("terminal: interrupt suppressed (%d)", n)
		}
	}
}
