package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/seitarof/prototype/internal/cli"
	"github.com/seitarof/prototype/internal/matcher"
	"github.com/seitarof/prototype/internal/parser"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	p := parser.New()
	sm, err := matcher.NewStructMatcher(cfg.Only)
	if err != nil {
		log.Fatal(err)
	}
	g, err := cli.NewGenerator(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	runner := cli.NewRunner(p, sm, g)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
