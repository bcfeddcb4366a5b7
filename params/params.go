// Package params parses the program's command-line arguments, in the
// manner of the teacher archiver's own params package. Per spec.md §6
// the recovery pass takes exactly one positional argument, the
// archive path; -o and -v are additive ambient conveniences that do
// not change that behavior when omitted.
package params

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Params holds the parsed configuration for one recovery run.
type Params struct {
	ArchivePath string
	OutputDir   string
	Verbose     bool
}

// PrintHelp prints the usage line to stdout and the flag defaults to
// the flag package's output (stderr unless redirected).
func PrintHelp() {
	program := filepath.Base(os.Args[0])

	fmt.Println("Использование:", program, usageExample)
	fmt.Printf("\nФлаги:\n")
	flag.PrintDefaults()
}

// ParseParams reads os.Args into a Params, or prints usage and exits
// with status 1 when there is not exactly one positional argument; an
// unknown flag makes the flag package exit with status 2.
func ParseParams() *Params {
	var p Params

	flag.Usage = PrintHelp
	flag.StringVar(&p.OutputDir, "o", ".", outputDirDesc)
	flag.BoolVar(&p.Verbose, "v", false, verboseDesc)

	var help bool
	flag.BoolVar(&help, "help", false, helpDesc)
	version := flag.Bool("V", false, versionDesc)
	flag.Parse()

	if *version {
		fmt.Print(versionText)
		os.Exit(0)
	}
	if help {
		PrintHelp()
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		printError(ErrArchivePath.Error())
	}
	p.ArchivePath = flag.Arg(0)

	return &p
}

func printError(message string) {
	fmt.Printf("%s\n\n", message)
	PrintHelp()
	os.Exit(1)
}
