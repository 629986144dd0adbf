// Command indexer records the content hash of every file in a sorted tree and
// reports files whose content is already indexed under another name.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/SamMatzko/sortery/pkg/index"
	"github.com/SamMatzko/sortery/pkg/log"
	"github.com/SamMatzko/sortery/pkg/sorter"
)

func main() {
	var dbPath, dir string
	var deleteFlag, verbose, noColor bool
	var exclude, only []string
	flag.StringVarP(&dbPath, "db", "q", ".", "directory holding the index database")
	flag.StringVarP(&dir, "dir", "s", ".", "directory to index")
	flag.BoolVarP(&deleteFlag, "delete", "d", false, "interactively delete duplicate files")
	flag.StringSliceVarP(&exclude, "exclude", "x", nil, "extensions to skip, without the dot")
	flag.StringSliceVarP(&only, "only", "o", nil, "only index these extensions; overrides --exclude")
	flag.BoolVarP(&verbose, "verbose", "v", false, "print every indexed file")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.Parse()

	if dbPath == "" || dir == "" {
		fmt.Printf("%s: required --db and --dir\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if noColor {
		log.DisableColor()
	}
	logger := log.New()
	logger.SetVerbose(verbose)
	index.SetLogger(logger)

	duplicates, err := index.UpdateIndex(dbPath, dir, sorter.NewFilter(exclude, only))
	if err != nil {
		logger.Error("Indexing %s failed: %v", dir, err)
		os.Exit(1)
	}
	logger.Success("Indexed %s, %d duplicate(s)", dir, len(duplicates))

	in := bufio.NewReader(os.Stdin)
	for _, dup := range duplicates {
		fmt.Println("\n=== Duplicate Found ===")
		fmt.Printf("Original: %s\n", dup.Original)
		fmt.Printf("New:      %s\n", dup.New)
		if !dup.Taken.IsZero() {
			fmt.Printf("Taken:    %s\n", dup.Taken.Format("2006-01-02 15:04:05"))
		}
		fmt.Println("=======================")

		if !deleteFlag {
			continue
		}
		fmt.Println("\nOptions:")
		fmt.Println("o - Delete original file")
		fmt.Println("n - Delete new file")
		fmt.Println("s - Skip (default)")
		fmt.Print("Enter your choice (o/n/s): ")

		choice, _ := in.ReadString('\n')
		choice = strings.ToLower(strings.TrimSpace(choice))

		var victim string
		switch choice {
		case "o":
			victim = dup.Original
		case "n":
			victim = dup.New
		default:
			fmt.Println("Skipping...")
			continue
		}
		if err := deleteFile(filepath.Join(dbPath, victim)); err != nil {
			logger.Error("Error deleting %s: %v", victim, err)
		} else {
			logger.Success("Deleted %s", victim)
		}
	}
}

func deleteFile(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", file, err)
	}
	if _, err := os.Stat(absPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Warning: file does not exist: %s\n", absPath)
		return nil
	}
	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", absPath, err)
	}
	return nil
}
