package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/bidboard/cmd"
	"github.com/thenoetrevino/bidboard/internal/cli"
)

func main() {
	err := cmd.Execute()

	// Commands report their own failures through the output formatter
	var coded *cli.ExitCodeError
	if err != nil && !errors.As(err, &coded) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCodeFor(err))
}
