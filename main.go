package main

import (
	"flag"
	"fmt"
	"os"

	"marinecast/internal/di"
	"marinecast/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "marinecast: %s\n", err)
		os.Exit(1)
	}
}
