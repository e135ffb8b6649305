package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/codahale/sha512"
)

// errReported is returned when every failure has already been logged or printed.
var errReported = errors.New("sha512sum: errors reported")

var errMalformed = errors.New("improperly formatted SHA512 checksum line")

type summer struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
	opts   options
}

func (s *summer) sumAll(files []string) error {
	failed := false
	for _, name := range files {
		digest, err := s.sumFile(name)
		if err != nil {
			s.log.Error("error reading file", "file", name, "err", err)
			failed = true
			continue
		}

		if s.opts.tag {
			_, err = fmt.Fprintf(s.stdout, "SHA512 (%s) = %x\n", name, digest)
		} else {
			_, err = fmt.Fprintf(s.stdout, "%x  %s\n", digest, name)
		}
		if err != nil {
			return err
		}
	}

	if failed {
		return errReported
	}
	return nil
}

func (s *summer) checkAll(files []string) error {
	var mismatched, unreadable, malformed int
	for _, list := range files {
		r, closeFn, err := s.open(list)
		if err != nil {
			s.log.Error("error opening checksum list", "file", list, "err", err)
			unreadable++
			continue
		}

		scanner := bufio.NewScanner(r)
		for lineNo := 1; scanner.Scan(); lineNo++ {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}

			name, want, err := parseLine(line)
			if err != nil {
				s.log.Warn("skipping line", "file", list, "line", lineNo, "err", err)
				malformed++
				continue
			}

			digest, err := s.sumFile(name)
			switch {
			case err != nil:
				s.log.Error("error reading file", "file", name, "err", err)
				s.report(name, "FAILED open or read", false)
				unreadable++
			case !bytes.Equal(digest[:], want):
				s.report(name, "FAILED", false)
				mismatched++
			default:
				s.report(name, "OK", true)
			}
		}

		err = scanner.Err()
		closeFn()
		if err != nil {
			s.log.Error("error reading checksum list", "file", list, "err", err)
			unreadable++
		}
	}

	if mismatched > 0 {
		s.log.Warn("computed checksums did not match", "count", mismatched)
	}

	if mismatched+unreadable+malformed > 0 {
		return errReported
	}
	return nil
}

func (s *summer) report(name, result string, ok bool) {
	if s.opts.status || (ok && s.opts.quiet) {
		return
	}
	_, _ = fmt.Fprintf(s.stdout, "%s: %s\n", name, result)
}

func (s *summer) sumFile(name string) ([sha512.Size]byte, error) {
	r, closeFn, err := s.open(name)
	if err != nil {
		return [sha512.Size]byte{}, err
	}
	defer closeFn()

	c := sha512.New()
	if _, err := io.Copy(c, r); err != nil {
		return [sha512.Size]byte{}, err
	}
	return c.Finalize(), nil
}

func (s *summer) open(name string) (io.Reader, func(), error) {
	if name == "-" {
		return s.stdin, func() {}, nil
	}

	f, err := os.Open(name) //nolint:gosec // reading user-named files is the point
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// parseLine parses a checksum line in either the default format ("<hex>  <name>" or "<hex> *<name>") or the BSD
// format ("SHA512 (<name>) = <hex>").
func parseLine(line string) (name string, digest []byte, err error) {
	var encoded string
	if rest, ok := strings.CutPrefix(line, "SHA512 ("); ok {
		i := strings.LastIndex(rest, ") = ")
		if i < 0 {
			return "", nil, errMalformed
		}
		name, encoded = rest[:i], rest[i+len(") = "):]
	} else {
		const n = 2 * sha512.Size
		if len(line) < n+2 || (line[n:n+2] != "  " && line[n:n+2] != " *") {
			return "", nil, errMalformed
		}
		encoded, name = line[:n], line[n+2:]
	}

	digest, err = hex.DecodeString(encoded)
	if err != nil || len(digest) != sha512.Size || name == "" {
		return "", nil, errMalformed
	}
	return name, digest, nil
}
