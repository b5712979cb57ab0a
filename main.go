package main

import (
	"flag"

	"roguesave/cli"
)

func main() {
	// go-arg owns the command line; glog keeps its defaults.
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)
	cli.Start()
}
