package main

import (
	"fmt"
	"os"

	"ecom-pipeline/common"
	"ecom-pipeline/generator"
	"ecom-pipeline/ingester"
	"ecom-pipeline/reporter"

	"github.com/google/uuid"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	// Set the backends to be used.
	logging.SetBackend(backendLeveled)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <generate|ingest|query|all>\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}
	stage := os.Args[1]

	config, err := common.InitConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := InitLogger(config.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	log.Debugf("Config: %+v", config)

	runId := uuid.NewString()
	log.Infof("Starting run %s, stage %s", runId, stage)

	switch stage {
	case "generate":
		runStage(config, "generate", generator.Run)
	case "ingest":
		runStage(config, "ingest", ingester.Run)
	case "query":
		runStage(config, "query", reporter.Run)
	case "all":
		runStage(config, "generate", generator.Run)
		runStage(config, "ingest", ingester.Run)
		runStage(config, "query", reporter.Run)
	default:
		usage()
	}

	log.Infof("Run %s finished", runId)
}

func runStage(config *common.Config, name string, stage func(*common.Config) error) {
	if err := stage(config); err != nil {
		log.Fatalf("Stage %s failed: %s", name, err)
	}
}
