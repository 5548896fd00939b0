package font

import "os"
import "io"
import "io/fs"
import "strings"
import "path/filepath"
import "encoding/json"

import "github.com/pkg/errors"

// Decodes a metrics [Spec] from the given JSON bytes and compiles
// it, returning the metrics along with the font name.
//
// This is a low level function; you may prefer to use a [Library]
// instead.
func ParseFromBytes(specBytes []byte) (*Metrics, string, error) {
	var spec Spec
	err := json.Unmarshal(specBytes, &spec)
	if err != nil { return nil, "", errors.Wrap(err, "decoding font metrics spec") }
	if spec.Name == "" {
		return nil, "", errors.New("font metrics spec missing \"name\"")
	}
	metrics, err := spec.Compile()
	if err != nil { return nil, spec.Name, errors.Wrapf(err, "compiling font metrics %q", spec.Name) }
	return metrics, spec.Name, nil
}

// Attempts to parse the metrics spec at the given filepath and
// returns the compiled metrics along with the font name. When the
// spec doesn't name the font, the file's base name is used instead.
//
// This is a low level function; you may prefer to use a [Library]
// instead.
func ParseFromPath(path string) (*Metrics, string, error) {
	if !hasValidSpecExtension(path) {
		return nil, "", errors.Errorf("invalid font metrics path %q", path)
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseSpecFileAndClose(file, path)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*Metrics, string, error) {
	if !hasValidSpecExtension(path) {
		return nil, "", errors.Errorf("invalid font metrics path %q", path)
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseSpecFileAndClose(file, path)
}

// ---- helpers ----

func parseSpecFileAndClose(file io.ReadCloser, path string) (*Metrics, string, error) {
	specBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil { return nil, "", err }

	var spec Spec
	err = json.Unmarshal(specBytes, &spec)
	if err != nil { return nil, "", errors.Wrapf(err, "decoding font metrics spec %q", path) }
	name := spec.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	metrics, err := spec.Compile()
	if err != nil { return nil, name, errors.Wrapf(err, "compiling font metrics %q", name) }
	return metrics, name, nil
}

func hasValidSpecExtension(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}
