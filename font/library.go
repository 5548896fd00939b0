package font

import "os"
import "io/fs"
import "errors"
import "strings"
import "path/filepath"

import "github.com/ekelse/btxt/internal/log"

// A collection of compiled font metrics accessible by name.
//
// The goal of a library is to make it easy to parse metrics specs in
// bulk and keep them all in a single place, with explicit
// construction and teardown instead of ambient global state.
type Library struct {
	metrics map[string]*Metrics
}

// Creates a new, empty metrics [Library].
func NewLibrary() *Library {
	return &Library{
		metrics: make(map[string]*Metrics),
	}
}

// Returns the current number of metrics sets in the library.
func (self *Library) Size() int { return len(self.metrics) }

// Finds out whether metrics with the given name exist in the library.
func (self *Library) HasMetrics(name string) bool {
	_, found := self.metrics[name]
	return found
}

// Returns the metrics with the given name, or nil if not found.
func (self *Library) GetMetrics(name string) *Metrics {
	metrics, found := self.metrics[name]
	if found { return metrics }
	return nil
}

// Adds the given metrics into the library under the given name. If
// the metrics are nil, the method will panic. If another metrics set
// with the same name was already present, [ErrAlreadyPresent] will
// be returned.
func (self *Library) AddMetrics(name string, metrics *Metrics) error {
	if metrics == nil { panic("can't add nil metrics to a library") }
	return self.addNewMetrics(metrics, name)
}

// Returns false if the metrics can't be removed due to not being
// found.
func (self *Library) RemoveMetrics(name string) bool {
	_, found := self.metrics[name]
	if !found { return false }
	delete(self.metrics, name)
	return true
}

// An error returned by [Library.AddMetrics]() and the library
// parsing functions when a metrics set is not added due to its name
// already being present in the [Library].
var ErrAlreadyPresent = errors.New("font metrics already present in the library")

// Special error that can be used with [Library.EachMetrics]() to
// break early. When used, the function will stop early but still
// return a nil error.
var ErrBreakEach = errors.New("EachMetrics() early break")

// Calls the given function for each metrics set in the library,
// passing their names and content as arguments, in pseudo-random
// order.
//
// If the given function returns a non-nil error, the method will
// immediately stop and return that error, with the only exception
// of [ErrBreakEach]. Otherwise, EachMetrics will always return nil.
func (self *Library) EachMetrics(metricsFunc func(string, *Metrics) error) error {
	for name, metrics := range self.metrics {
		err := metricsFunc(name, metrics)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// The equivalent of [ParseFromBytes]() for libraries.
func (self *Library) ParseFromBytes(specBytes []byte) (string, error) {
	metrics, name, err := ParseFromBytes(specBytes)
	if err != nil { return name, err }
	return name, self.addNewMetrics(metrics, name)
}

// The equivalent of [ParseFromPath]() for libraries.
func (self *Library) ParseFromPath(path string) (string, error) {
	metrics, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewMetrics(metrics, name)
}

// The equivalent of [ParseFromFS]() for libraries.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	metrics, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewMetrics(metrics, name)
}

// Walks the given directory of the given filesystem non-recursively
// and adds all the .json metrics specs in it. Returns the number of
// metrics sets added, the number skipped (when metrics with the same
// name already exist in the library) and any error that might happen
// during the process.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !hasValidSpecExtension(entry.Name()) { continue }
		path := entry.Name()
		if dirName != "." && dirName != "" {
			path = strings.TrimSuffix(dirName, "/") + "/" + entry.Name()
		}
		_, err = self.ParseFromFS(filesys, path)
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}

// Same as [Library.ParseAllFromFS](), but for OS directory paths.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }
	return self.ParseAllFromFS(os.DirFS(absDirPath), ".")
}

func (self *Library) addNewMetrics(metrics *Metrics, name string) error {
	if self.HasMetrics(name) { return ErrAlreadyPresent }
	self.metrics[name] = metrics
	log.Logger().Debug("font metrics registered", "name", name, "lineHeight", metrics.LineHeight())
	return nil
}
