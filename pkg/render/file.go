package render

import (
	"os"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
)

// readTextFile returns the contents of a UTF-8 text file
func readTextFile(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileNotFound, "ascii art file %s not found", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to open ascii art file %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat ascii art file %s", path)
	}
	if info.IsDir() {
		return "", errors.Newf(errors.ErrFileAccess, "ascii art path %s is a directory", path)
	}

	data, err := afero.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read ascii art file %s", path)
	}
	if !utf8.Valid(data) {
		return "", errors.Newf(errors.ErrFileAccess, "ascii art file %s is not valid UTF-8", path)
	}
	return string(data), nil
}
