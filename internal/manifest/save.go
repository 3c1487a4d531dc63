package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/pkm/internal/messages"
)

// Changed reports whether the document differs from what was loaded.
func (f *File) Changed() (bool, error) {
	data, err := f.Doc.Marshal()
	if err != nil {
		return false, err
	}
	return !bytes.Equal(data, f.original), nil
}

// Save writes the document back to its path when it changed, printing a
// unified diff of the change to out first. The write goes through a
// temporary file and rename so a crash never leaves a half-written
// manifest. Concurrent invocations race; last writer wins.
func (f *File) Save(out io.Writer) error {
	data, err := f.Doc.Marshal()
	if err != nil {
		return err
	}
	if bytes.Equal(data, f.original) {
		return nil
	}

	fmt.Fprintln(out, messages.ManifestDiffHeader)
	fmt.Fprint(out, udiff.Unified(f.Path, f.Path, string(f.original), string(data)))

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.ManifestWriteFmt, f.Path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(messages.ManifestWriteFmt, f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf(messages.ManifestWriteFmt, f.Path, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf(messages.ManifestWriteFmt, f.Path, err)
	}
	f.original = data
	return nil
}
