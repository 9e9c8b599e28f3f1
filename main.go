package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/chzyer/readline"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/bismuthsalamander/takuzu/takugo"
)

var log = logrus.New()

// Solved when no puzzle is supplied.
const defaultPuzzle = "1  1   0  1   0  00  1    1 0  1   1"

type options struct {
	progress bool
	stats    bool
	unique   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	interactive := flag.Bool("i", false, "interactive prompt; solve each puzzle line entered")
	file := flag.String("f", "", "read the puzzle string from a file")
	profileMode := flag.String("profile", "", "write a cpu, mem or clock profile to the working directory")
	verbose := flag.Bool("v", false, "debug logging")
	flag.BoolVar(&opts.progress, "progress", false, "print a progress bar while solving")
	flag.BoolVar(&opts.stats, "stats", false, "print search statistics after solving")
	flag.BoolVar(&opts.unique, "unique", false, "report whether the solution is unique")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "clock":
		defer profile.Start(profile.ClockProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Errorf("unknown profile mode %q", *profileMode)
		return 2
	}

	if *interactive {
		return repl(opts)
	}

	if *file != "" {
		b, err := takugo.GetBoardFromFile(*file)
		if err != nil {
			log.Errorf("%s: %v", *file, err)
			if badPuzzle(err) {
				return 2
			}
			// Unreadable file rather than a bad puzzle.
			return 1
		}
		return solveBoard(b, opts)
	}

	input := defaultPuzzle
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	} else {
		log.Info("no puzzle given; solving the built-in puzzle")
	}
	return solveOne(input, opts)
}

func badPuzzle(err error) bool {
	return errors.Is(err, takugo.ErrBoardSize) ||
		errors.Is(err, takugo.ErrPuzzleLength) ||
		errors.Is(err, takugo.ErrPuzzleCharacter)
}

func solveOne(input string, opts options) int {
	b, err := takugo.BoardFromString(input)
	if err != nil {
		log.Errorf("bad puzzle: %v", err)
		return 2
	}
	return solveBoard(b, opts)
}

func solveBoard(b takugo.Board, opts options) int {
	fmt.Print(b)
	s := takugo.NewSolver(b)
	var wg sync.WaitGroup
	if opts.progress {
		wg.Add(1)
		go PrintUpdates(s, &wg)
	}
	sol, ok := s.Solve()
	if opts.progress {
		close(s.Progress)
		wg.Wait()
	}
	stats := s.Stats()
	log.WithFields(logrus.Fields{
		"nodes":  stats.Nodes,
		"pruned": stats.Pruned,
	}).Debugf("search finished in %v", stats.Duration)
	if !ok {
		fmt.Println("no solution")
	} else {
		fmt.Println()
		fmt.Print(sol)
		if done, reason := sol.IsSolved(); !done {
			fmt.Printf("Not solved (%v)\n", reason)
		}
		if opts.unique {
			if takugo.NewSolver(b).Unique(context.Background()) {
				fmt.Println("solution is unique")
			} else {
				fmt.Println("other solutions exist")
			}
		}
	}
	if opts.stats {
		fmt.Printf("nodes: %d\npruned: %d\n", stats.Nodes, stats.Pruned)
		fmt.Print(s.Watch().Results())
	}
	return 0
}

func repl(opts options) int {
	rl, err := readline.New("takuzu> ")
	if err != nil {
		log.Errorf("readline: %v", err)
		return 1
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if line == "" {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		// An all-space line of valid length is a blank puzzle; only a truly
		// empty line is skipped.
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		solveOne(line, opts)
	}
	return 0
}
