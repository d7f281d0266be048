// Copyright © 2018 One Concern

package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oneconcern/igvsession/pkg/storage"
	"github.com/oneconcern/igvsession/pkg/storage/status"
	"github.com/spf13/afero"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// New creates a new local file system backed storage model.
//
// When fs is nil, the operating system file system is used and keys are
// resolved against the current working directory.
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, status.ErrNotExists.Wrap(err)
		}
		return nil, err
	}
	if fi.IsDir() {
		return nil, status.ErrIsDirectory.Wrapf("%q", key)
	}
	return l.fs.Open(key)
}

// Put writes an object, creating parent directories as needed.
//
// An existing object is overwritten.
func (l *localFS) Put(ctx context.Context, key string, source io.Reader) error {
	if dir := filepath.Dir(key); dir != "" && dir != "." {
		if err := l.fs.MkdirAll(dir, dirPerm); err != nil {
			return status.ErrCreateDirectory.Wrap(fmt.Errorf("ensuring directories for %q: %w", key, err))
		}
	}
	target, err := l.fs.OpenFile(key, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return status.ErrWrite.Wrap(fmt.Errorf("create record for %q: %w", key, err))
	}
	if _, err = io.Copy(target, source); err != nil {
		_ = target.Close()
		return status.ErrWrite.Wrap(fmt.Errorf("write record for %q: %w", key, err))
	}
	if err = target.Close(); err != nil {
		return status.ErrWrite.Wrap(fmt.Errorf("close record for %q: %w", key, err))
	}
	return nil
}

func (l *localFS) Delete(ctx context.Context, key string) error {
	if err := l.fs.Remove(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	const root = "."
	var res []string
	e := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || info.IsDir() {
			return nil
		}
		res = append(res, path)
		return nil
	})
	if e != nil {
		return nil, e
	}
	return res, nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	case *afero.MemMapFs:
		return localfs + "@memory"
	default:
		return localfs
	}
}
