package fsutil

import (
	"os"
)

// Create creates an empty regular file at path. An existing file is left as
// it is (it is not truncated).
func Create(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return err
	}

	return file.Close()
}
