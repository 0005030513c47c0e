// Package utils provides small filesystem helpers shared by providers and
// the install path.
package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// manifestFiles are the filenames that mark a directory as a skill for any
// supported platform.
var manifestFiles = []string{
	"claude.json",
	"cline.json",
	"cursor.json",
	"roo.json",
	".roomodes",
	"manifest.json",
	"skill.json",
	"codex.json",
	"kilo.yaml",
	"kilo.yml",
	"wrangler.toml",
	".cursorrules",
	"SKILL.md",
}

// CopyDir recursively copies the contents of src into dst, creating dst if
// needed. Symlinks are followed.
func CopyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "failed to copy %s", src)
	}

	return nil
}

// IsSkillDir reports whether the directory contains at least one recognized
// skill manifest file, or a README.md as a last resort.
func IsSkillDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}

	for _, name := range manifestFiles {
		if _, err := os.Stat(filepath.Join(path, name)); err == nil {
			return true
		}
	}

	_, err = os.Stat(filepath.Join(path, "README.md"))
	return err == nil
}

// SanitizeFilename replaces filesystem-unsafe characters with hyphens and
// strips leading dots so the result never hides as a dotfile.
func SanitizeFilename(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)

	return strings.TrimLeft(sanitized, ".")
}
