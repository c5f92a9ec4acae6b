package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vegasq/mdata/table"
)

// WriteFile encodes t with f and stores the result at path.
//
// The data is written to a temporary file next to path and renamed into
// place once complete, so readers never observe a partial file and a failed
// write leaves nothing behind. An existing file at path is replaced.
func WriteFile(ctx context.Context, path string, f Formatter, t *table.Table) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	f.SetOutput(file)
	if err = f.Format(t); err != nil {
		return err
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
