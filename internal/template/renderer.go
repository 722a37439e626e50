// Package template wraps pongo2 rendering for the portal's pages and
// fragments, with optional on-disk reload during development.
package template

import (
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/config"
)

// Renderer loads .pongo2 templates from a directory and renders them into
// gin responses. Templates are cached by the set; in watch mode a filesystem
// change drops the cache so the next render picks up the edit.
type Renderer struct {
	dir     string
	set     *pongo2.TemplateSet
	watcher *fsnotify.Watcher

	mu sync.RWMutex
}

// NewRenderer builds a renderer over cfg.Dir. With cfg.Watch set it also
// starts the reload watcher; callers own Close.
func NewRenderer(cfg config.TemplatesConfig) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(cfg.Dir)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		dir: cfg.Dir,
		set: pongo2.NewSet("portal", loader),
	}
	if cfg.Watch {
		if err := r.watch(); err != nil {
			log.Printf("template: watch disabled: %v", err)
		}
	}
	return r, nil
}

// TemplateSet exposes the underlying set, mainly for parse checks in tests.
func (r *Renderer) TemplateSet() *pongo2.TemplateSet { return r.set }

// HTML renders the named template with the given context. Render failures
// produce a plain 500; pages have nothing useful to show for a broken
// template.
func (r *Renderer) HTML(c *gin.Context, status int, name string, ctx pongo2.Context) {
	r.mu.RLock()
	tpl, err := r.set.FromCache(name)
	r.mu.RUnlock()
	if err != nil {
		log.Printf("template: load %s: %v", name, err)
		c.String(http.StatusInternalServerError, "template error")
		c.Abort()
		return
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		log.Printf("template: render %s: %v", name, err)
		c.String(http.StatusInternalServerError, "template error")
		c.Abort()
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(out))
}

// watch invalidates the template cache whenever a file under the template
// directory changes.
func (r *Renderer) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	r.watcher = watcher

	var dirs []string
	_ = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})

	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			log.Printf("template: cannot watch %s: %v", d, err)
		}
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					r.mu.Lock()
					r.set.CleanCache()
					r.mu.Unlock()
					debugLog("template: cache dropped after change to %s", ev.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("template: watcher error: %v", err)
			}
		}
	}()
	return nil
}

// Close stops the reload watcher.
func (r *Renderer) Close() error {
	if r.watcher != nil {
		return r.watcher.Close()
	}
	return nil
}

// debugLog logs only when LOG_LEVEL=debug
func debugLog(format string, v ...interface{}) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.Printf(format, v...)
	}
}
