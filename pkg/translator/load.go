package translator

import (
	"os"

	"github.com/pkg/errors"

	"gohack/pkg/utils"
)

// Load reads a single .vm file or every .vm file of a directory, in name
// order, and reports whether path was a directory.
func Load(path string) ([]Unit, bool, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, false, errors.Wrap(err, "Load")
	}

	files := []string{path}
	if st.IsDir() {
		files, err = utils.FilesWithExt(path, ".vm")
		if err != nil {
			return nil, true, err
		}
		if len(files) == 0 {
			return nil, true, errors.Errorf("Load %v: no .vm files", path)
		}
	}

	units := make([]Unit, 0, len(files))
	for _, f := range files {
		raw, err := utils.ReadLines(f)
		if err != nil {
			return nil, st.IsDir(), err
		}
		units = append(units, Unit{
			Name:  utils.BaseName(f),
			Lines: utils.CleanLines(raw),
		})
	}
	return units, st.IsDir(), nil
}
