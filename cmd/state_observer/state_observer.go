package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/selectdb/state_observer/pkg/demo"
	"github.com/selectdb/state_observer/pkg/utils"
	"github.com/selectdb/state_observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
)

var (
	cfg         = demo.DefaultConfig()
	showVersion bool
	metricsDump bool
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "The program's version")

	flag.IntVar(&cfg.Rounds, "rounds", demo.DefaultRounds, "business logic rounds before the detach")
	flag.BoolVar(&cfg.DetachAttached, "detach_attached", false, "detach the attached observer B instead of a new instance")
	flag.BoolVar(&metricsDump, "metrics_dump", false, "dump the in-memory metrics to stderr at exit")
	flag.Parse()

	if err := utils.InitLog(); err != nil {
		fmt.Fprintf(os.Stderr, "init log failed: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if showVersion {
		printVersion()
	}

	log.Debugf("state observer start, version: %s", getVersion())

	sink, err := xmetrics.InitGlobal("state-observer")
	if err != nil {
		log.Fatalf("init metrics failed: %+v", err)
	}

	if err := demo.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("run demo failed: %+v", err)
	}

	if metricsDump {
		xmetrics.Dump(sink, os.Stderr)
	}
}
