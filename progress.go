package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/bismuthsalamander/takuzu/takugo"
)

// PrintUpdates redraws a one-line progress bar as the search deepens. It
// runs until the solver's Progress channel is closed.
func PrintUpdates(s *takugo.Solver, wg *sync.WaitGroup) {
	defer wg.Done()
	if s.Progress == nil {
		return
	}
	fmt.Println("Starting...")
	for {
		select {
		case update, ok := <-s.Progress:
			if !ok {
				return
			}
			bar := ""
			pct := float64(update.Assigned) / float64(update.Cells)
			for i := 0.05; i <= 1.0; i += 0.05 {
				if pct >= i {
					bar += "="
				} else {
					bar += "."
				}
			}
			fmt.Print("\033[1A\033[K")
			fmt.Printf("[%s] %d/%d (%d nodes)\n", bar, update.Assigned, update.Cells, update.Nodes)
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}
