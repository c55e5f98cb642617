package main

import (
	"fmt"
	"os"

	"github.com/zllovesuki/MonitorController/controller"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Compile time injected variables
var (
	Version     = "v0.0.0-dev"
	IsDebug     = "yes"
	logLocation = `C:\Logs\MonitorController.log`
)

func main() {
	os.Exit(run(controller.NewRootCommand))
}

func run(newRoot func(controller.RunConfig) (*cobra.Command, error)) (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[monitorctl] unhandled fault: %+v", r)
			fmt.Fprintf(os.Stderr, "unhandled fault: %v\n", r)
			if IsDebug != "no" {
				panic(r)
			}
			code = 1
		}
	}()

	if IsDebug == "no" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   logLocation,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		})
	}

	root, err := newRoot(controller.RunConfig{
		Version: Version,
		In:      os.Stdin,
		Out:     os.Stdout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := root.Execute(); err != nil {
		log.Errorf("[monitorctl] %+v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
