package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultFS bundles the default layouts and page assets so a bare
// checkout builds without any layouts/ directory. A local layouts/
// directory, when present, overrides the embedded set wholesale.
//
//go:embed layouts/*.html assets/*
var defaultFS embed.FS

// templateSet holds one parsed template tree per page kind. Each kind
// pairs base.html with its own "main" definition; html/template has a
// single name space per tree, so the kinds cannot share one tree.
type templateSet struct {
	home  *template.Template
	topic *template.Template
	page  *template.Template
}

func (b *Builder) loadTemplates() (*templateSet, error) {
	layoutsDir := b.layoutsDir()
	useLocal := false
	if _, err := os.Stat(filepath.Join(layoutsDir, "base.html")); err == nil {
		useLocal = true
	}

	parse := func(kind string) (*template.Template, error) {
		if useLocal {
			tmpl, err := template.ParseFiles(
				filepath.Join(layoutsDir, "base.html"),
				filepath.Join(layoutsDir, kind+".html"),
			)
			if err != nil {
				return nil, fmt.Errorf("parsing local %s layout: %w", kind, err)
			}
			return tmpl, nil
		}
		tmpl, err := template.ParseFS(defaultFS, "layouts/base.html", "layouts/"+kind+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing embedded %s layout: %w", kind, err)
		}
		return tmpl, nil
	}

	home, err := parse("home")
	if err != nil {
		return nil, err
	}
	topic, err := parse("topic")
	if err != nil {
		return nil, err
	}
	page, err := parse("page")
	if err != nil {
		return nil, err
	}
	return &templateSet{home: home, topic: topic, page: page}, nil
}

// writeAssets copies the embedded stylesheet and copy-button script
// into the output tree.
func (b *Builder) writeAssets(outputDir string) error {
	entries, err := fs.ReadDir(defaultFS, "assets")
	if err != nil {
		return fmt.Errorf("reading embedded assets: %w", err)
	}
	assetDir := filepath.Join(outputDir, "assets")
	if err := os.MkdirAll(assetDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating %q: %w", assetDir, err)
	}
	for _, entry := range entries {
		data, err := defaultFS.ReadFile("assets/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading embedded asset %q: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(assetDir, entry.Name()), data, 0o644); err != nil {
			return fmt.Errorf("writing asset %q: %w", entry.Name(), err)
		}
	}
	return nil
}
