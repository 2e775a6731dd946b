package main

import (
	"bytes"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// exportSite writes index.html and the static tree under dir so the page can
// be hosted without this server.
func exportSite(dir string, tmpl *template.Template, p Portfolio) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	var buf bytes.Buffer
	if err := renderPage(&buf, tmpl, p); err != nil {
		return errors.Wrap(err, "failed to render page")
	}

	index := filepath.Join(dir, indexTemplate)
	if err := os.WriteFile(index, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", index)
	}
	log.Info().Str("file", index).Int("bytes", buf.Len()).Msg("Wrote page")

	copied := 0
	err := fs.WalkDir(staticFiles, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := staticFiles.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to copy static assets")
	}

	log.Info().Str("dir", dir).Int("assets", copied).Msg("Export complete")
	return nil
}
