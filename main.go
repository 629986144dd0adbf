// Command sortery renames the files of a directory tree into
// <dest>/<YYYY>/<MM>/ folders, naming them after one of their timestamps.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/SamMatzko/sortery/pkg/log"
	"github.com/SamMatzko/sortery/pkg/sorter"
)

type options struct {
	src, dest     string
	configFile    string
	dateFormat    string
	dateType      string
	preserveName  bool
	exclude, only []string
	dryRun        bool
	avoidExisting bool
	noProgress    bool
	noColor       bool
	verbose       bool
}

func main() {
	var o options
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	o.register(fs)
	fs.Parse(os.Args[1:])
	os.Exit(run(o, fs))
}

func (o *options) register(fs *flag.FlagSet) {
	d := sorter.DefaultSettings()
	fs.StringVarP(&o.src, "src", "s", "", "source dir")
	fs.StringVarP(&o.dest, "dest", "d", "output", "destination dir")
	fs.StringVarP(&o.configFile, "config", "c", "", "JSON settings file")
	fs.StringVarP(&o.dateFormat, "date-format", "f", d.DateFormat, "strftime pattern for the new file names")
	fs.StringVarP(&o.dateType, "date-type", "t", d.DateType, "timestamp to sort by: a (accessed), c (created) or m (modified)")
	fs.BoolVarP(&o.preserveName, "preserve-name", "p", false, "append the old file name to the new one")
	fs.StringSliceVarP(&o.exclude, "exclude", "x", nil, "extensions to leave alone, without the dot")
	fs.StringSliceVarP(&o.only, "only", "o", nil, "only sort these extensions; overrides --exclude")
	fs.BoolVarP(&o.dryRun, "dry-run", "n", false, "print what would be renamed without touching anything")
	fs.BoolVar(&o.avoidExisting, "avoid-existing", false, "also number files whose destination already exists on disk")
	fs.BoolVar(&o.noProgress, "no-progress", false, "do not show a progress bar")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "print every planned rename")
}

// settings loads the JSON file, if any, and applies the flags the user set
// explicitly on top of it.
func (o *options) settings(fs *flag.FlagSet) (*sorter.Settings, error) {
	s := sorter.DefaultSettings()
	if o.configFile != "" {
		var err error
		if s, err = sorter.LoadSettings(o.configFile); err != nil {
			return nil, err
		}
	}
	if o.configFile == "" || fs.Changed("date-format") {
		s.DateFormat = o.dateFormat
	}
	if o.configFile == "" || fs.Changed("date-type") {
		s.DateType = o.dateType
	}
	if fs.Changed("preserve-name") {
		s.PreserveName = o.preserveName
	}
	if fs.Changed("exclude") {
		s.ExcludeType = o.exclude
	}
	if fs.Changed("only") {
		s.OnlyType = o.only
	}
	return s, nil
}

func run(o options, fs *flag.FlagSet) int {
	if o.noColor {
		log.DisableColor()
	}
	logger := log.New()
	logger.SetVerbose(o.verbose)

	if o.src == "" {
		fmt.Printf("%s: required --src\n", fs.Name())
		fs.PrintDefaults()
		return 2
	}

	s, err := o.settings(fs)
	if err != nil {
		logger.Error("%v", err)
		return exitCode(err)
	}
	cfg, err := s.Config(o.src, o.dest)
	if err != nil {
		logger.Error("%v", err)
		return exitCode(err)
	}
	srt, err := sorter.New(cfg, sorter.WithLogger(logger), sorter.WithAvoidExisting(o.avoidExisting))
	if err != nil {
		logger.Error("%v", err)
		return exitCode(err)
	}

	logger.Info("Sorting %s into %s by %s date, %s, dry run=%v", cfg.SourceRoot, cfg.TargetRoot, cfg.DateKind, srt.Filter(), o.dryRun)
	plan, err := srt.Plan()
	if err != nil {
		report(logger, err, cfg.SourceRoot)
		return exitCode(err)
	}

	if o.dryRun {
		res, err := srt.Execute(plan, true, nil)
		if err != nil {
			report(logger, err, cfg.SourceRoot)
			return exitCode(err)
		}
		for i := range res.Sources {
			fmt.Printf("%s -> %s\n", res.Sources[i], color.CyanString(res.Destinations[i]))
		}
		logger.Success("%d file(s) would be sorted", res.Sorted)
		return 0
	}

	var bar *progressbar.ProgressBar
	progress := func(done, total, _ int) {
		if o.noProgress {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Sorting"),
				progressbar.OptionSetWidth(30),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		bar.Set(done)
	}
	res, err := srt.Execute(plan, false, progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		report(logger, err, cfg.SourceRoot)
		logger.Warn("%d of %d file(s) were renamed before the failure and stay where they are", res.Sorted, len(plan.Entries))
		return exitCode(err)
	}
	logger.Success("Sorted %d file(s)", res.Sorted)
	return 0
}

func report(logger *log.Log, err error, src string) {
	if errors.Is(err, sorter.ErrSourceRootMissing) {
		fmt.Fprintf(os.Stderr, "%s \"%s\" does not exist.\n", color.RedString("Error:"), color.New(color.Bold).Sprint(src))
		return
	}
	logger.Error("%v", err)
}

// exitCode gives every failure kind its own status for scripts.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sorter.ErrConfigParse):
		return 2
	case errors.Is(err, sorter.ErrSourceRootMissing):
		return 3
	case errors.Is(err, sorter.ErrMetadataUnavailable):
		return 4
	case errors.Is(err, sorter.ErrTimestampKindUnsupported):
		return 5
	case errors.Is(err, sorter.ErrRenameFailed):
		return 6
	}
	return 1
}
