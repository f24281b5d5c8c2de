package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/kevin-cantwell/ansigif"
)

// handleInterrupt restores the cursor if the conversion is interrupted while
// frames are being echoed, then re-raises the signal. The returned func stops
// listening.
func handleInterrupt(t ansigif.Terminal) (stop func()) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case s := <-signals:
			t.ShowCursor(true)
			// Stop notifying this channel
			signal.Stop(signals)
			// Calling os.Exit here would skip the default handling of the signal.
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				p.Signal(s)
			}
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
	}
}
