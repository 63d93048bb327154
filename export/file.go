package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orayew2002/usergen/domain"
	"github.com/spf13/afero"
)

// FileMode is the permission of a newly created output file. An existing file
// keeps its own mode when it is replaced.
const FileMode os.FileMode = 0o644

// WriteFile serializes t with the writer registered for format and stores the
// result at path. Output goes to a temporary file next to path and is renamed
// into place only after it was written and closed, so a failed run never
// leaves a truncated or headerless file behind.
func (r *Registry) WriteFile(fs afero.Fs, path, format string, t Table) (err error) {
	write, err := r.Lookup(format)
	if err != nil {
		return &domain.Error{Code: domain.ErrCodeInvalidArgument, Message: "select writer", Cause: err}
	}

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return domain.NewIOFailure(fmt.Sprintf("create directory %s", dir), err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return domain.NewIOFailure(fmt.Sprintf("create temp file in %s", dir), err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = fs.Remove(tmpName)
		}
	}()

	if err := write(tmp, t); err != nil {
		return domain.NewIOFailure(fmt.Sprintf("write %s", path), err)
	}

	if err := tmp.Sync(); err != nil {
		return domain.NewIOFailure(fmt.Sprintf("sync %s", path), err)
	}

	if err := tmp.Close(); err != nil {
		return domain.NewIOFailure(fmt.Sprintf("close %s", path), err)
	}

	mode := FileMode
	if info, statErr := fs.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err := fs.Chmod(tmpName, mode); err != nil {
		return domain.NewIOFailure(fmt.Sprintf("chmod %s", path), err)
	}

	if err := fs.Rename(tmpName, path); err != nil {
		return domain.NewIOFailure(fmt.Sprintf("rename into %s", path), err)
	}

	return nil
}

// Head returns up to n leading lines of the text file at path.
func Head(fs afero.Fs, path string, n int) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, domain.NewIOFailure(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	lines := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	for len(lines) < n && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.NewIOFailure(fmt.Sprintf("read %s", path), err)
	}

	return lines, nil
}
