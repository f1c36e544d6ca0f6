package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/hcmut-hub/tkb/core/catalog"
	catalogstore "github.com/hcmut-hub/tkb/storage/catalog"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  compilecatalog -in COURSES.json -out COURSES.gob - precompile the JSON catalog to gob")
	fmt.Fprintln(cli.out, "  cachestats -catalog PATH [-base YYYY-MM-DD]      - expand the occurrence cache and report stats")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	compileCmd := flag.NewFlagSet("compilecatalog", flag.ExitOnError)
	compileIn := compileCmd.String("in", "", "Path to the JSON catalog export.")
	compileOut := compileCmd.String("out", "", "Path to write the gob catalog to.")

	statsCmd := flag.NewFlagSet("cachestats", flag.ExitOnError)
	statsCatalog := statsCmd.String("catalog", "", "Path to the catalog (json or gob).")
	statsBase := statsCmd.String("base", "2025-08-25", "Semester base date, the Monday of week 1.")

	switch args[1] {
	case "compilecatalog":
		if err := compileCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *compileIn == "" || *compileOut == "" {
			compileCmd.Usage()
			return errHelp
		}
		return cli.compileCatalog(*compileIn, *compileOut)
	case "cachestats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *statsCatalog == "" {
			statsCmd.Usage()
			return errHelp
		}
		return cli.cacheStats(*statsCatalog, *statsBase)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) compileCatalog(in, out string) error {
	cat, err := catalogstore.Load(in)
	if err != nil {
		return err
	}
	if err := catalogstore.WriteGob(out, cat); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d courses compiled to %s\n", len(cat), out)
	return nil
}

func (cli *commandLine) cacheStats(path, base string) error {
	baseDate, err := time.ParseInLocation("2006-01-02", base, time.Local)
	if err != nil {
		return fmt.Errorf("invalid base date %q: %v", base, err)
	}
	cat, err := catalogstore.Load(path)
	if err != nil {
		return err
	}

	cache := catalog.NewOccurrenceCache(baseDate, cat)

	var groups, schedules, occurrences, unknownDays int
	for ci := range cat {
		c := &cat[ci]
		groups += len(c.Groups)
		for gi := range c.Groups {
			g := &c.Groups[gi]
			schedules += len(g.Schedules)
			for si := range g.Schedules {
				s := &g.Schedules[si]
				occurrences += len(cache.Dates(c, g, s))
				if !catalog.ParseWeekday(s.Thu).Known() {
					unknownDays++
				}
			}
		}
	}

	fmt.Fprintf(cli.out, "catalog:     %s\n", path)
	fmt.Fprintf(cli.out, "base date:   %s\n", cache.BaseDate().Format("2006-01-02"))
	fmt.Fprintf(cli.out, "courses:     %d\n", len(cat))
	fmt.Fprintf(cli.out, "groups:      %d\n", groups)
	fmt.Fprintf(cli.out, "schedules:   %d (%d with unknown weekday)\n", schedules, unknownDays)
	fmt.Fprintf(cli.out, "identities:  %d\n", cache.Len())
	fmt.Fprintf(cli.out, "occurrences: %d\n", occurrences)
	return nil
}
