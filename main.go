package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toolreg-labs/toolreg/internal/cli"
	"github.com/toolreg-labs/toolreg/internal/program"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var exitErr *program.NonZeroExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		os.Exit(exitErr.Code)
	}
	os.Exit(1)
}
