package bucket

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
)

// copyFile copies src to dest through a temporary file in dest's folder,
// keeping src's permission bits.
func copyFile(src, dest string) (err error) {
	slog.Debug("copying", "from", src, "to", dest)

	srcInfo, err := checkFile(src, dest)
	if err != nil {
		return err
	}

	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source file %q: %w", src, err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			slog.Error("could not close source file", "name", src, "error", closeErr)
		}
	}()

	outFile, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close destination file %q: %w", dest, closeErr)
		}
		if err == nil {
			err = os.Rename(outFile.Name(), dest)
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if _, err = io.Copy(outFile, inFile); err != nil {
		return fmt.Errorf("could not copy from %q to %q: %w", src, dest, err)
	}
	if err = outFile.Chmod(srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("could not set mode of %q: %w", dest, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", dest, err)
	}
	return nil
}

// moveFile renames src to dest, falling back to copy and delete when they
// sit on different devices.
func moveFile(src, dest string) error {
	slog.Debug("moving", "from", src, "to", dest)

	if _, err := checkFile(src, dest); err != nil {
		return err
	}

	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return fmt.Errorf("could not move %q to %q: %w", src, dest, err)
	}

	if err := copyFile(src, dest); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("could not remove moved file %q: %w", src, err)
	}
	return nil
}

// checkFile makes sure src is a regular file and dest does not exist yet.
func checkFile(src, dest string) (fs.FileInfo, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !srcInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot copy non-regular file %q: %s", srcInfo.Name(), srcInfo.Mode().String())
	}

	destInfo, err := os.Stat(dest)
	if err == nil {
		return nil, fmt.Errorf("destination file already exists: %q", destInfo.Name())
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot stat destination file %q: %w", dest, err)
	}

	return srcInfo, nil
}
