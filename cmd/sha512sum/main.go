// Command sha512sum prints or checks SHA-512 checksums of files.
//
// With no FILE, or when FILE is -, it reads standard input. In --check mode, each FILE is a list of checksums in the
// format produced by sha512sum (either the default or --tag format), and each listed file is hashed and compared.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, log); err != nil {
		if !errors.Is(err, errReported) {
			log.Error("sha512sum failed", "err", err)
		}
		os.Exit(1)
	}
}

type options struct {
	check  bool
	tag    bool
	quiet  bool
	status bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, log *slog.Logger) error {
	var opts options

	flagSet := pflag.NewFlagSet("sha512sum", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&opts.check, "check", "c", false, "read checksums from the FILEs and check them")
	flagSet.BoolVar(&opts.tag, "tag", false, "create a BSD-style checksum")
	flagSet.BoolVar(&opts.quiet, "quiet", false, "don't print OK for each successfully verified file")
	flagSet.BoolVar(&opts.status, "status", false, "don't output anything, status code shows success")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: sha512sum [OPTION]... [FILE]...\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		flagSet.Usage()
		return nil
	}

	if opts.tag && opts.check {
		return errors.New("the --tag option is meaningless when verifying checksums")
	}

	files := flagSet.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	s := &summer{stdin: stdin, stdout: stdout, log: log, opts: opts}
	if opts.check {
		return s.checkAll(files)
	}
	return s.sumAll(files)
}
