package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/michaelloftdk/rejsekort-parser/internal/extracting"
	"github.com/michaelloftdk/rejsekort-parser/internal/journey"
	"github.com/michaelloftdk/rejsekort-parser/internal/parsing"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

const defaultGlob = "REJSEKORT_*.pdf"

func main() {
	fs := ff.NewFlagSet("rejsekort-parser")
	var (
		output      = fs.StringLong("output", "rejsekort_journeys.csv", "CSV output file path")
		dbPath      = fs.StringLong("db", "", "Journey history database path (optional)")
		verbose     = fs.Bool('v', "verbose", "Enable debug-level diagnostics")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("REJSEKORT"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	paths := discoverFiles(fs.GetArgs(), log)
	if len(paths) == 0 {
		fmt.Println("No Rejsekort PDF files found.")
		fmt.Println("Usage: rejsekort-parser [file1.pdf file2.pdf ...]")
		fmt.Printf("   or: place %s files in the current directory\n", defaultGlob)
		return
	}

	var db journey.DB
	if *dbPath != "" {
		boltDB, err := journey.NewBoltDB(*dbPath)
		if err != nil {
			log.Error("failed to open history database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer boltDB.Close()
		db = boltDB
	}

	service := journey.NewService(extracting.NewPDFExtractor(), parsing.New(log), db, log)
	journeys := service.ProcessFiles(paths)

	journey.RenderTable(os.Stdout, journeys)

	if len(journeys) > 0 && promptYesNo("Save to CSV? (y/n): ") {
		if err := journey.SaveCSV(*output, journeys); err != nil {
			log.Error("failed to save CSV", "path", *output, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Data saved to %s\n", *output)
	}
}

// discoverFiles filters the positional arguments down to PDF paths, or globs
// the working directory when no arguments were given.
func discoverFiles(args []string, log *slog.Logger) []string {
	if len(args) == 0 {
		paths, err := filepath.Glob(defaultGlob)
		if err != nil {
			log.Error("failed to glob for invoice files", "pattern", defaultGlob, "error", err)
			return nil
		}
		return paths
	}

	var paths []string
	for _, arg := range args {
		if !strings.HasSuffix(arg, ".pdf") {
			log.Warn("ignoring argument without .pdf suffix", "argument", arg)
			continue
		}
		paths = append(paths, arg)
	}
	return paths
}

func promptYesNo(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
