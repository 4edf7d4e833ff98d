/*
Command numscan splits files into numeric literal tokens.

	numscan [flags] [file ...]

Files are scanned concurrently. Without file arguments, numscan reads from
standard input. Results are printed in the order of the arguments, either as
text (one token per line) or as a msgpack stream with one record per file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// tracer traces with key 'numlex.scan'
func tracer() tracing.Trace {
	return tracing.Select("numlex.scan")
}

var rootCmd = &cobra.Command{
	Use:   "numscan [flags] [file ...]",
	Short: "Split files into numeric literal tokens",
	Long: `numscan reads numbers separated by whitespace and reports every literal
found, with its type, value and position. Invalid literals are reported as
well, together with a diagnostic on stderr.`,
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	rootCmd.Flags().String("mode", "auto", "literal families to recognize (auto|floats|ints)")
	rootCmd.Flags().String("engine", "fsm", "scanning engine (fsm|lexmachine)")
	rootCmd.Flags().Int("jobs", 0, "number of files scanned in parallel (0 = GOMAXPROCS)")
	rootCmd.Flags().String("format", "text", "output format (text|msgpack)")
	rootCmd.Flags().String("float-kind", "double", "kind of float literals (double|float|longdouble)")
	rootCmd.Flags().String("int-kind", "long", "kind of integer literals (long|int|short)")
	rootCmd.Flags().Bool("bare-zero", false, "accept a lone 0 as an integer literal")
	rootCmd.Flags().String("trace", "Error", "trace level [Debug|Info|Error]")
}

func main() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	tlevel, _ := cmd.Flags().GetString("trace")
	tracer().SetTraceLevel(tracing.TraceLevelFromString(tlevel))
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "msgpack" {
		return fmt.Errorf("unknown format: %s", format)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	results, err := scanFiles(cmd.Context(), args, opts)
	if err != nil {
		return err
	}
	for _, r := range results {
		for _, e := range r.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
	}
	if format == "msgpack" {
		return writeMsgpack(os.Stdout, results)
	}
	return writeText(os.Stdout, results)
}
