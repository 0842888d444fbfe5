package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/hlah/minpl"
	"github.com/hlah/minpl/term"
)

var (
	boldRed   = color.New(color.FgRed, color.Bold).SprintFunc()
	boldGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func main() {
	var debug bool
	pflag.BoolVarP(&debug, "debug", "d", false, `trace solver calls`)
	pflag.Parse()

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Panicf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = terminal.Restore(0, oldState)
	}
	defer restore()

	t := terminal.NewTerminal(os.Stdin, "?- ")
	defer fmt.Printf("\r\n")

	log.SetOutput(t)

	level := hclog.Off
	if debug {
		level = hclog.Trace
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "minpl",
		Level:  level,
		Output: t,
	})

	i := minpl.New(logger)
	for _, a := range pflag.Args() {
		fmt.Fprintf(t, "Loading database '%s'...\n", a)
		b, err := os.ReadFile(a)
		if err != nil {
			log.Panicf("failed to read %s: %v", a, err)
		}
		if err := i.Exec(string(b)); err != nil {
			log.Panicf("failed to load %s: %v", a, err)
		}
	}

	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return
			}
			log.Printf("failed to read line: %v", err)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		results, err := i.Query(line)
		if err != nil {
			fmt.Fprintf(t, "%s\n", boldRed(fmt.Sprintf("error: %v", err)))
			continue
		}
		printResults(t, results)
	}
}

func printResults(w io.Writer, results []*term.Env) {
	if len(results) == 0 {
		fmt.Fprintf(w, "%s\n", boldRed("false."))
		return
	}
	for _, result := range results {
		if result.IsEmpty() {
			fmt.Fprintf(w, "%s\n", boldGreen("true."))
		} else {
			fmt.Fprintf(w, "%s\n", result)
		}
	}
}
