package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/zeninput/bindings"
	"github.com/milk9111/zeninput/input"
)

func main() {
	dump := flag.Bool("dump", false, "print each file back in normalized form")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bindcheck [-dump] [file.yaml ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		files = []string{bindings.DefaultFile}
	}

	failed := false
	for _, name := range files {
		data, err := readBindings(name)
		if err != nil {
			log.Printf("FAIL %s: %v", name, err)
			failed = true
			continue
		}
		spec, summary, err := check(data)
		if err != nil {
			log.Printf("FAIL %s: %v", name, err)
			failed = true
			continue
		}
		fmt.Printf("ok   %s: %s\n", name, summary)

		if *dump {
			out, err := bindings.Encode(spec)
			if err != nil {
				log.Printf("FAIL %s: %v", name, err)
				failed = true
				continue
			}
			os.Stdout.Write(out)
		}
	}

	if failed {
		os.Exit(1)
	}
}

// readBindings prefers a path as given and falls back to the bindings
// directory and the embedded defaults.
func readBindings(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return bindings.Load(name)
}

// check parses and builds data against a scratch input system and runs every
// trigger once so script runtime errors surface too.
func check(data []byte) (*bindings.Spec, string, error) {
	spec, err := bindings.Parse(data)
	if err != nil {
		return nil, "", err
	}
	set, err := bindings.Build(input.NewSystem(nil), spec)
	if err != nil {
		return nil, "", err
	}
	set.Update()

	summary := fmt.Sprintf("%d buttons, %d sticks, %d triggers",
		len(set.ButtonNames()), len(set.StickNames()), len(set.TriggerNames()))
	return spec, summary, nil
}
