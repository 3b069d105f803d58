// Package site builds the static HTML site: curriculum topic pages
// from the compiled-in lesson data, plus any auxiliary markdown pages
// under content/.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gouthamgo/apex-academy/internal/config"
	"github.com/gouthamgo/apex-academy/internal/lesson"
)

// Meta is the site-wide data loaded from site.yaml. It is display
// metadata only; behavior is configured through config.Config.
type Meta struct {
	Title   string                 `yaml:"title"`
	Tagline string                 `yaml:"tagline"`
	Author  string                 `yaml:"author"`
	Params  map[string]interface{} `yaml:"params"`
}

// Conventional source directories, relative to the working directory.
const (
	ContentDir = "content"
	LayoutsDir = "layouts"
	StaticDir  = "static"
)

// Builder renders the site into the configured output directory.
type Builder struct {
	Config config.Config
	Meta   Meta
	Topics []lesson.Topic

	// Dir overrides for tests. Empty means the conventional name.
	ContentDir string
	LayoutsDir string
	StaticDir  string
}

// TopicLink is the home-page listing entry for one topic.
type TopicLink struct {
	Slug        string
	Title       string
	Description string
	Icon        string
}

// PageData is what the layouts receive.
type PageData struct {
	SiteTitle   string
	Tagline     string
	PageTitle   string
	Description string
	Icon        string
	Content     template.HTML
	BaseURL     string
	Topics      []TopicLink
	Params      map[string]interface{}
}

// Build renders everything. The output directory is removed and
// recreated on every run.
func (b *Builder) Build() error {
	outputDir := b.Config.OutputDir
	log.Printf("Building site into %s", outputDir)

	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("cleaning output directory %q: %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating output directory %q: %w", outputDir, err)
	}

	templates, err := b.loadTemplates()
	if err != nil {
		return err
	}

	if err := b.writeAssets(outputDir); err != nil {
		return err
	}
	if err := b.copyStatic(outputDir); err != nil {
		return err
	}
	if err := b.buildTopicPages(outputDir, templates); err != nil {
		return err
	}
	if err := b.buildHomePage(outputDir, templates); err != nil {
		return err
	}
	if err := b.buildContentPages(outputDir, templates); err != nil {
		return err
	}

	log.Printf("Build complete: %d topics", len(b.Topics))
	return nil
}

func (b *Builder) siteTitle() string {
	if b.Meta.Title != "" {
		return b.Meta.Title
	}
	return b.Config.SiteTitle
}

func (b *Builder) pageData(pageTitle string) PageData {
	return PageData{
		SiteTitle: b.siteTitle(),
		Tagline:   b.Meta.Tagline,
		PageTitle: pageTitle,
		BaseURL:   strings.TrimSuffix(b.Config.BaseURL, "/"),
		Params:    b.Meta.Params,
	}
}

func (b *Builder) buildTopicPages(outputDir string, templates *templateSet) error {
	for _, topic := range b.Topics {
		data := b.pageData(topic.Title)
		data.Description = topic.Description
		data.Icon = topic.Icon
		data.Content = template.HTML(lesson.RenderHTML(topic.Nodes()))

		dest := filepath.Join(outputDir, topic.Slug, "index.html")
		if err := writePage(dest, templates.topic, data); err != nil {
			return fmt.Errorf("rendering topic %q: %w", topic.Slug, err)
		}
	}
	return nil
}

func (b *Builder) buildHomePage(outputDir string, templates *templateSet) error {
	data := b.pageData(b.siteTitle())
	for _, topic := range b.Topics {
		data.Topics = append(data.Topics, TopicLink{
			Slug:        topic.Slug,
			Title:       topic.Title,
			Description: topic.Description,
			Icon:        topic.Icon,
		})
	}
	if err := writePage(filepath.Join(outputDir, "index.html"), templates.home, data); err != nil {
		return fmt.Errorf("rendering home page: %w", err)
	}
	return nil
}

// buildContentPages renders auxiliary markdown pages under content/
// with goldmark. Missing content/ is fine: the curriculum itself is
// compiled in and needs no source directory.
func (b *Builder) buildContentPages(outputDir string, templates *templateSet) error {
	sourceDir := b.contentDir()
	if _, err := os.Stat(sourceDir); os.IsNotExist(err) {
		log.Printf("Content directory %q not found, skipping auxiliary pages", sourceDir)
		return nil
	}

	mdParser := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
	titleCaser := cases.Title(language.English)

	return filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walking %q: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		fileBytes, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}

		var fm map[string]interface{}
		body, err := frontmatter.Parse(bytes.NewReader(fileBytes), &fm)
		if err != nil {
			log.Printf("No usable frontmatter in %s (%v), treating as pure markdown", path, err)
			body = fileBytes
			fm = map[string]interface{}{}
		}

		var htmlBuf bytes.Buffer
		if err := mdParser.Convert(body, &htmlBuf); err != nil {
			return fmt.Errorf("converting %q: %w", path, err)
		}

		pageTitle, _ := fm["title"].(string)
		if pageTitle == "" {
			base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
			pageTitle = titleCaser.String(base)
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return fmt.Errorf("relativizing %q: %w", path, err)
		}
		permalink := strings.TrimSuffix(relPath, filepath.Ext(relPath))

		data := b.pageData(pageTitle)
		if desc, ok := fm["description"].(string); ok {
			data.Description = desc
		}
		data.Content = template.HTML(htmlBuf.String())

		dest := filepath.Join(outputDir, filepath.FromSlash(permalink), "index.html")
		if err := writePage(dest, templates.page, data); err != nil {
			return fmt.Errorf("rendering page %q: %w", relPath, err)
		}
		return nil
	})
}

func (b *Builder) copyStatic(outputDir string) error {
	staticDir := b.staticDir()
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		return nil
	}
	log.Printf("Copying static assets from %s", staticDir)
	if err := copyDirContents(staticDir, outputDir); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}
	return nil
}

func (b *Builder) contentDir() string {
	if b.ContentDir != "" {
		return b.ContentDir
	}
	return ContentDir
}

func (b *Builder) layoutsDir() string {
	if b.LayoutsDir != "" {
		return b.LayoutsDir
	}
	return LayoutsDir
}

func (b *Builder) staticDir() string {
	if b.StaticDir != "" {
		return b.StaticDir
	}
	return StaticDir
}

func writePage(dest string, tmpl *template.Template, data PageData) error {
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return fmt.Errorf("creating %q: %w", filepath.Dir(dest), err)
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %q: %w", dest, err)
	}
	defer f.Close()

	if err := tmpl.ExecuteTemplate(f, "base", data); err != nil {
		return fmt.Errorf("executing layout for %q: %w", dest, err)
	}
	return nil
}

// copyDirContents copies every regular file under src into dst,
// preserving the directory structure.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(target)
		if err != nil {
			return err
		}
		defer out.Close()

		_, err = io.Copy(out, in)
		return err
	})
}
