package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// BackupDirName is the directory created next to the documents that keeps
// every original under its original name.
const BackupDirName = "Originalbelege"

// FileRenamer applies a receipt's suggested name on disk. The original is
// first moved into the backup directory, then copied back out under the new
// name, so the untouched original always survives the rename.
type FileRenamer struct{}

// NewFileRenamer creates a renamer.
func NewFileRenamer() *FileRenamer {
	return &FileRenamer{}
}

// Rename moves the receipt's file into the backup directory and writes a
// copy under the suggested name. It returns the new path.
func (r *FileRenamer) Rename(receipt model.Receipt) (string, error) {
	if receipt.SuggestedName == "" {
		return "", fmt.Errorf("receipt %s has no suggested name", receipt.Path)
	}

	dir := filepath.Dir(receipt.Path)
	ext := filepath.Ext(receipt.Path)
	target := collisionFreePath(dir, receipt.SuggestedName, ext)

	backupDir := filepath.Join(dir, BackupDirName)
	if err := os.MkdirAll(backupDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	base := receipt.OriginalFileName()
	backupPath := collisionFreePath(backupDir,
		base[:len(base)-len(ext)], ext)

	if err := os.Rename(receipt.Path, backupPath); err != nil {
		return "", fmt.Errorf("failed to move original to backup: %w", err)
	}

	if err := copyFile(backupPath, target); err != nil {
		// Put the original back so a failed copy leaves the directory
		// exactly as it was.
		_ = os.Rename(backupPath, receipt.Path)
		return "", fmt.Errorf("failed to write renamed copy: %w", err)
	}

	return target, nil
}

// collisionFreePath returns dir/name+ext, appending " (2)", " (3)", … to the
// name until it does not collide with an existing file.
func collisionFreePath(dir, name, ext string) string {
	candidate := filepath.Join(dir, name+ext)
	for n := 2; ; n++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", name, n, ext))
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
