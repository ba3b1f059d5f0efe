package main

import (
	"flag"
	"fmt"
	"os"

	"flashcat.cloud/procpaw/actions"
	"flashcat.cloud/procpaw/config"
	"flashcat.cloud/procpaw/finder"
	"flashcat.cloud/procpaw/logger"
	"flashcat.cloud/procpaw/procinfo"
	"flashcat.cloud/procpaw/session"
	"flashcat.cloud/procpaw/trace"
	"flashcat.cloud/procpaw/tui"
	"github.com/toolkits/pkg/runner"
)

var (
	configFile  = flag.String("config", "procpaw.toml", "Specify configuration file.")
	showVersion = flag.Bool("version", false, "Show version.")
	loglevel    = flag.String("loglevel", "", "e.g. debug, info, warn, error, fatal")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(config.Version)
		os.Exit(0)
	}

	cfg, err := config.InitConfig(*configFile, *loglevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "procpaw:", err)
		os.Exit(1)
	}

	closefn := logger.Build(cfg.LogConfig)
	defer closefn()

	runner.Init()
	logger.Logger.Info("runner.binarydir: ", runner.Cwd)
	logger.Logger.Info("runner.hostname: ", runner.Hostname)
	logger.Logger.Info("search.strategy: ", cfg.Search.Strategy)

	sess := session.New(finder.New(cfg.Search), procinfo.NewReader())
	registry := actions.BuildRegistry(actions.NewSignaller(cfg.Kill))
	tracer := trace.NewSession(cfg.Trace)

	if err := tui.Run(sess, registry, tracer); err != nil {
		logger.Logger.Errorw("session exited with error", "error", err)
		fmt.Fprintln(os.Stderr, "procpaw:", err)
		os.Exit(1)
	}

	logger.Logger.Info("procpaw exited")
}
