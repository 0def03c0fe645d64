package main

import (
	"fmt"
	"os"
	"photobooth/internal/di"
	"photobooth/internal/structures"

	flag "github.com/spf13/pflag"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVarP(&flags.ConfigPath, "config", "c", "config.yml", "path to the YAML configuration file")
	flag.BoolVarP(&flags.DebugMode, "debug", "d", false, "also log to stderr")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "photoboothd: %s\n", err)
		os.Exit(1)
	}
}
