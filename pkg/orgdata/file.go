package orgdata

import (
	"fmt"
	"math/rand/v2"
	"os"

	"pkg.jsn.cam/orgdata/internal/output"
)

// GenerateFile generates a dataset and overwrites path with it. Params are
// validated before anything is generated or written, so an invalid range
// leaves path untouched. It returns the number of records written.
func GenerateFile(r *rand.Rand, p Params, path string) (int, error) {
	records, err := Generate(r, p)
	if err != nil {
		return 0, err
	}

	data, err := Marshal(records)
	if err != nil {
		return 0, err
	}

	if err := output.WriteFile(path, data); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return len(records), nil
}

// ReadFile decodes the dataset stored at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
