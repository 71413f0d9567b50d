package media

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Backup copies the media root into a timestamped folder under backupDir and
// returns its path.
func (s *Store) Backup(backupDir string, now time.Time) (string, error) {
	destDir := filepath.Join(backupDir, now.Format("2006-01-02_15-04-05"))
	if err := copyDir(s.Root, destDir); err != nil {
		return "", fmt.Errorf("failed to back up media: %w", err)
	}
	return destDir, nil
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// CleanupBackups removes backup folders older than retention and returns
// how many were removed.
func CleanupBackups(backupDir string, retention time.Duration, now time.Time) int {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return 0
	}

	cutoff := now.Add(-retention)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
				continue
			}
			log.Printf("🗑️ Removed old backup: %s", folderPath)
			removed++
		}
	}
	return removed
}

// NextRun returns the next time at hour:min strictly after now.
func NextRun(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
