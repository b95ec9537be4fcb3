package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sheetc/format"
	"sheetc/state"
)

func runFmt(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("write")
	log := env.Log.Named("fmt")

	if cmd.Args().Len() == 0 {
		if env.Overwrite {
			return fmt.Errorf("cannot use --write with standard input")
		}
		return format.Pipe("<stdin>", os.Stdout, os.Stdin, nil, log)
	}

	return eachFile(ctx, cmd, func(path string, perm fs.FileMode, data io.ReadCloser) error {
		buf := new(bytes.Buffer)
		if err := format.Pipe(path, buf, data, nil, log); err != nil {
			return err
		}
		if err := data.Close(); err != nil {
			return err
		}

		if env.Overwrite {
			log.Debug("Rewriting file", zap.String("file", path))
			return os.WriteFile(path, buf.Bytes(), perm)
		}
		_, err := io.Copy(os.Stdout, buf)
		return err
	})
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() == 0 {
		return format.Check("<stdin>", os.Stdout, os.Stdin, nil, log)
	}

	return eachFile(ctx, cmd, func(path string, _ fs.FileMode, data io.ReadCloser) error {
		defer data.Close()
		return format.Check(path, os.Stdout, data, nil, log)
	})
}

// eachFile calls fn once for every stylesheet named on the command line.
// Directory arguments are walked recursively; files inside them are
// selected by the configured extensions. Named files are processed
// regardless of extension. Per-file failures are accumulated so one bad
// file does not hide the rest.
func eachFile(ctx context.Context, cmd *cli.Command, fn func(path string, perm fs.FileMode, data io.ReadCloser) error) (errs error) {
	env := state.EnvFromContext(ctx)
	exts := env.Cfg.Format.Extensions

	for _, filename := range cmd.Args().Slice() {
		f, err := os.Open(filename)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			errs = multierr.Append(errs, err)
			continue
		}

		if !fi.IsDir() {
			errs = multierr.Append(errs, fn(filename, fi.Mode().Perm(), f))
			continue
		}
		f.Close()

		err = filepath.WalkDir(filename, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() || !slices.Contains(exts, filepath.Ext(d.Name())) {
				return nil
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			fi, err := f.Stat()
			if err != nil {
				f.Close()
				return err
			}
			errs = multierr.Append(errs, fn(path, fi.Mode().Perm(), f))
			return nil
		})
		errs = multierr.Append(errs, err)
	}
	return errs
}
