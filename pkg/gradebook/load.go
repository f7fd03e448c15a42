package gradebook

import (
	"fmt"
	"io"
	"os"

	"github.com/necbot/gradebook-go/pkg/gradebook/xlsxio"
)

// Load opens an .xlsx workbook from disk and builds a Gradebook from it.
func Load(path string, opts Options) (*Gradebook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := xlsxio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return Build(wb, opts), nil
}

// LoadReader builds a Gradebook from an .xlsx byte stream, e.g. an HTTP
// upload or a fetched cloud-share download.
func LoadReader(r io.Reader, opts Options) (*Gradebook, error) {
	wb, err := xlsxio.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return Build(wb, opts), nil
}
