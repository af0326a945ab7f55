package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/framegrace/texeldonut/internal/devshell"
)

func main() {
	appName := flag.String("app", "donut", "name of the app to run ("+strings.Join(devshell.Apps(), ", ")+")")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-app name] [args...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := devshell.RunApp(*appName, flag.Args()); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
