package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"
	"github.com/peterh/liner"

	edacal "github.com/Enzo-Palavicino/T3EDA-Ruiz-Palavicino"
	"github.com/Enzo-Palavicino/T3EDA-Ruiz-Palavicino/internal/repl"
)

const historyFile = ".edacal_history"

const usage = `usage: edacal [-ndvh] [-H n] [-f file] [-e expr]...

  -e expr   evaluate expr and exit (any number of times)
  -f file   read lines from file instead of the terminal (- for stdin)
  -H n      number of lines kept by the history command (default 20)
  -n        disable colored output
  -v        verbose logging
  -d        debug logging
  -h        print this message
`

func main() {
	log.SetLogLevel(log.Warning)
	var (
		exprs  []string
		inname string
		hist   = repl.DefaultHistory
		nocol  bool
	)
	opts, optind, err := getopt.Getopts(os.Args, "e:f:H:ndvh")
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		log.Fatalf("%v", err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			exprs = append(exprs, opt.Value)
		case 'f':
			inname = opt.Value
		case 'H':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n < 0 {
				log.Fatalf("invalid -H parameter %q", opt.Value)
			}
			hist = n
		case 'n':
			nocol = true
		case 'd':
			log.SetLogLevel(log.Debug)
		case 'v':
			log.SetLogLevel(log.Verbose)
		case 'h':
			fmt.Print(usage)
			return
		}
	}
	if optind < len(os.Args) {
		log.Fatalf("unexpected arguments: %s", strings.Join(os.Args[optind:], " "))
	}

	sess := edacal.NewSession()
	ropts := []repl.Option{repl.History(hist)}
	if nocol {
		ropts = append(ropts, repl.NoColor())
	}

	switch {
	case len(exprs) > 0:
		r := repl.New(sess, os.Stdout, ropts...)
		for _, e := range exprs {
			if r.Handle(e) {
				break
			}
		}
	case inname != "":
		in, err := infile(inname)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer in.Close()
		r := repl.New(sess, os.Stdout, ropts...)
		if err := r.Run(repl.NewScanner(in)); err != nil {
			log.Fatalf("reading %s: %v", inname, err)
		}
	default:
		interactive(sess, ropts)
	}
}

// interactive runs the session on the terminal with line editing. The input
// history is loaded from and saved to the user's home directory.
func interactive(sess *edacal.Session, ropts []repl.Option) {
	fmt.Println("Welcome to EdaCal. Type help for commands, exit to leave.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Warnf("reading history: %v", err)
			}
			f.Close()
		}
	}

	ropts = append(ropts, repl.OnEval(ln.AppendHistory))
	r := repl.New(sess, os.Stdout, ropts...)
	if err := r.Run(ln); err != nil {
		log.Errf("%v", err)
	}
	fmt.Println()

	if histPath == "" {
		return
	}
	f, err := os.Create(histPath)
	if err != nil {
		log.Warnf("saving history: %v", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warnf("saving history: %v", err)
	}
}

func infile(inname string) (io.ReadCloser, error) {
	if inname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inname)
}
