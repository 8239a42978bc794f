// Command geoutil measures, projects and encodes geographic coordinates.
//
// Points are given as "lat,lon[,elevation]" in degrees and meters, or as the
// name of a place from the --places file. Pass "--" before points with a
// negative latitude so they are not read as options.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

func main() {
	a := &app{out: os.Stdout}
	parser := newParser(a, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, flagsErr.Message)
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, flagsErr.Message)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Command failed")
	}
}
