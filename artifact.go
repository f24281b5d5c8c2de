package ansigif

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile writes doc to path atomically: the document goes to a temporary
// file next to path which is then renamed over it. On failure path is left
// as it was.
func WriteFile(path string, doc []byte) (err error) {
	tmp, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(doc); err != nil {
		return errors.Wrap(err, "write output")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync output")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close output")
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return errors.Wrap(err, "chmod output")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "rename output")
	}
	return nil
}
