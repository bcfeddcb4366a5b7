package main

import (
	"io"
	"os"

	"qicrestore/errtype"
	"qicrestore/params"
	"qicrestore/qic"
)

func main() {
	p := params.ParseParams()

	var diag io.Writer = io.Discard
	if p.Verbose {
		diag = os.Stderr
	}

	_, err := qic.Run(p.ArchivePath, p.OutputDir, diag)
	if err != nil {
		errtype.HandleError(err)
	}
}
