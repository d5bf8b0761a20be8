// Package topics serves long-form documentation topics from an embedded
// filesystem, rendered for the terminal.
package topics

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/stagehand-dev/stagehand/pkg/errors"
)

// Topic is a single documentation page.
type Topic struct {
	Name    string
	Format  string // file extension, e.g. ".md"
	Content string
}

// Store holds the topics found in a filesystem tree.
type Store struct {
	topics   map[string]*Topic
	renderer Renderer
}

// supported topic file extensions
var extensions = []string{".md", ".txt"}

// NewStore scans fsys under root for topic files. Topic names are the
// file basenames with the extension stripped.
func NewStore(fsys fs.FS, root string, renderer Renderer) (*Store, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	s := &Store{
		topics:   make(map[string]*Topic),
		renderer: renderer,
	}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		s.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to scan topics")
	}

	return s, nil
}

// Get retrieves a topic by name. Flag-style names (--foo) are accepted.
func (s *Store) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")
	topic, ok := s.topics[name]
	return topic, ok
}

// List returns all topic names sorted alphabetically.
func (s *Store) List() []string {
	names := make([]string, 0, len(s.topics))
	for name := range s.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the topic's content formatted for the terminal.
func (s *Store) Render(t *Topic) string {
	return s.renderer.Render(t.Content, t.Format)
}
