package index

import (
	"crypto/md5"
	"encoding/base32"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta"
	"golang.org/x/exp/slices"

	"github.com/SamMatzko/sortery/pkg/log"
	"github.com/SamMatzko/sortery/pkg/sorter"
)

var logger = log.New()

// SetLogger replaces the package logger.
func SetLogger(l *log.Log) {
	logger = l
}

// Duplicate is a file whose content matches an already indexed one. Both
// paths are relative to the database directory.
type Duplicate struct {
	Hash     string
	Original string
	New      string
	Taken    time.Time
}

// UpdateIndex hashes every file under dir accepted by filter and records it in
// the database kept in dbPath. Files already indexed under the same path are
// assumed unchanged. Indexed files that have since moved get their path
// updated; files whose content is already indexed elsewhere are returned as
// duplicates, ordered by original path.
func UpdateIndex(dbPath, dir string, filter *sorter.Filter) ([]Duplicate, error) {
	absDb, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, err
	}
	db, err := Open(absDb)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	logger.Info("Opened DB at %s", absDb)

	var dups []Duplicate
	count := 0
	err = sorter.Walk(dir, func(path string) error {
		if strings.HasPrefix(filepath.Base(path), dbName) || !filter.Eligible(path) {
			return nil
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(absDb, absPath)
		if err != nil {
			return err
		}
		h, err := db.GetHash(relPath)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if h != "" {
			return nil
		}
		h, err = hashFile(path)
		if err != nil {
			return fmt.Errorf("hash %s: %w", path, err)
		}
		existing, err := db.GetName(h)
		if err != nil {
			logger.Warn("Read name for hash failed: %v", err)
			return nil
		}
		switch {
		case existing == "":
			logger.Debug("No existing row, inserting (%s, %s)", relPath, h)
			if err := db.Insert(relPath, h, captureDate(path)); err != nil {
				logger.Warn("%v", err)
			}
		case !fileExists(filepath.Join(absDb, existing)):
			logger.Debug("%s moved to %s (%s), updating", existing, relPath, h)
			if err := db.UpdatePath(relPath, h); err != nil {
				logger.Warn("%v", err)
			}
		default:
			taken, err := db.GetTaken(existing)
			if err != nil {
				logger.Warn("Read capture date for %s failed: %v", existing, err)
			}
			logger.Warn("DUP: %s - %s (%s)", existing, relPath, h)
			dups = append(dups, Duplicate{Hash: h, Original: existing, New: relPath, Taken: taken})
		}
		count++
		if count%100 == 0 {
			logger.Info("%d - %s", count, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(dups, func(a, b Duplicate) int {
		return strings.Compare(a.Original, b.Original)
	})
	return dups, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func hashFile(f string) (string, error) {
	handle, err := os.Open(f)
	if err != nil {
		return "", err
	}
	defer handle.Close()
	hash := md5.New()
	if _, err := io.Copy(hash, handle); err != nil {
		return "", err
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(hash.Sum(nil)), nil
}

// captureDate reads the EXIF creation date of an image; zero for anything
// without one.
func captureDate(path string) time.Time {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}
	}
	defer f.Close()
	e, err := imagemeta.Decode(f)
	if err != nil {
		return time.Time{}
	}
	return e.CreateDate()
}
