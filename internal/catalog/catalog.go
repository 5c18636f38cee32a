// Package catalog loads the game catalog: an index of categories that name
// per-game folders, each holding a descriptor record.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrNoIndex is returned when the catalog root has no index file.
var ErrNoIndex = errors.New("catalog: index not found")

// Index and record file names, in lookup order.
var (
	indexFiles  = []string{"games-list.yaml", "games-list.json"}
	recordFiles = []string{"data.yaml", "data.json"}
)

// ArcadeScheme marks play targets served by this binary.
const ArcadeScheme = "arcade"

// Record describes one game card.
type Record struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Thumbnail   string   `yaml:"thumbnail" json:"thumbnail"`
	Video       string   `yaml:"video" json:"video"`
	PlayURL     string   `yaml:"playUrl" json:"playUrl"`
	SourceURL   string   `yaml:"sourceUrl" json:"sourceUrl"`
	Tags        []string `yaml:"tags" json:"tags"`
	Featured    bool     `yaml:"isFeatured" json:"isFeatured"`

	// Set by the loader from the index
	Category string `yaml:"-" json:"-"`
	Folder   string `yaml:"-" json:"-"`
}

// LocalGame returns the registry ID of an arcade:<id> play target.
func (r Record) LocalGame() (string, bool) {
	id, ok := strings.CutPrefix(r.PlayURL, ArcadeScheme+":")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// matches reports whether query appears in the title, description or tags.
// The comparison ignores case.
func (r Record) matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Catalog holds the records that loaded, in index order.
type Catalog struct {
	records    []Record
	categories []string
}

// Load reads the index at the root of fsys and every record it names.
// A missing index is ErrNoIndex. A record that cannot be read, parsed, or
// has no title or play target is skipped with a warning.
func Load(fsys fs.FS, logger *log.Logger) (*Catalog, error) {
	if logger == nil {
		logger = log.Default()
	}

	data, name, err := readFirst(fsys, indexFiles)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNoIndex
	}

	cats, err := parseIndex(name, data)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to parse %s: %w", name, err)
	}

	c := &Catalog{}
	for _, cat := range cats {
		c.categories = append(c.categories, cat.name)
		for _, folder := range cat.folders {
			rec, err := loadRecord(fsys, cat.name, folder)
			if err != nil {
				logger.Warn("skipping game", "category", cat.name, "folder", folder, "error", err)
				continue
			}
			c.records = append(c.records, rec)
		}
	}

	logger.Debug("catalog loaded", "index", name, "games", len(c.records), "categories", len(c.categories))
	return c, nil
}

// readFirst returns the contents of the first existing file among names.
// It returns nil data when none exists.
func readFirst(fsys fs.FS, names []string) ([]byte, string, error) {
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err == nil {
			return data, name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, name, fmt.Errorf("catalog: failed to read %s: %w", name, err)
		}
	}
	return nil, "", nil
}

type category struct {
	name    string
	folders []string
}

// parseIndex decodes the categories mapping, keeping its document order.
func parseIndex(name string, data []byte) ([]category, error) {
	if path.Ext(name) == ".json" {
		return parseJSONIndex(data)
	}

	var doc struct {
		Categories yaml.Node `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	node := doc.Categories
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("categories must be a mapping (line %d)", node.Line)
	}

	cats := make([]category, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var folders []string
		if err := node.Content[i+1].Decode(&folders); err != nil {
			return nil, fmt.Errorf("category %q: %w", node.Content[i].Value, err)
		}
		cats = append(cats, category{name: node.Content[i].Value, folders: folders})
	}
	return cats, nil
}

// parseJSONIndex walks the categories object token by token, since
// decoding into a map would lose key order.
func parseJSONIndex(data []byte) ([]category, error) {
	var doc struct {
		Categories json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Categories) == 0 || string(doc.Categories) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(doc.Categories))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, errors.New("categories must be an object")
	}

	var cats []category
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var folders []string
		if err := dec.Decode(&folders); err != nil {
			return nil, fmt.Errorf("category %q: %w", key, err)
		}
		cats = append(cats, category{name: key, folders: folders})
	}
	return cats, nil
}

// loadRecord reads games/<category>/<folder>/data.{yaml,json}.
func loadRecord(fsys fs.FS, cat, folder string) (Record, error) {
	dir := path.Join("games", cat, folder)
	names := make([]string, len(recordFiles))
	for i, f := range recordFiles {
		names[i] = path.Join(dir, f)
	}

	data, name, err := readFirst(fsys, names)
	if err != nil {
		return Record{}, err
	}
	if data == nil {
		return Record{}, fmt.Errorf("catalog: no descriptor in %s", dir)
	}

	var rec Record
	if err := decode(name, data, &rec); err != nil {
		return Record{}, fmt.Errorf("catalog: failed to parse %s: %w", name, err)
	}
	if rec.Title == "" {
		return Record{}, fmt.Errorf("catalog: %s has no title", name)
	}
	if rec.PlayURL == "" {
		return Record{}, fmt.Errorf("catalog: %s has no playUrl", name)
	}

	if rec.ID == "" {
		rec.ID = folder
	}
	rec.Category = cat
	rec.Folder = folder

	rec.Thumbnail = ResolveAsset(dir, rec.Thumbnail)
	rec.Video = ResolveAsset(dir, rec.Video)
	rec.PlayURL = ResolveAsset(dir, rec.PlayURL)
	return rec, nil
}

// decode picks the decoder from the file extension.
func decode(name string, data []byte, v any) error {
	if path.Ext(name) == ".json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// ResolveAsset prefixes a relative asset path with the record directory.
// Empty values, http(s) URLs, ./ and / paths, and targets with a scheme
// such as arcade: are returned unchanged.
func ResolveAsset(dir, p string) string {
	if p == "" || strings.HasPrefix(p, "http") || strings.HasPrefix(p, "./") || strings.HasPrefix(p, "/") {
		return p
	}
	if u, err := url.Parse(p); err == nil && u.Scheme != "" {
		return p
	}
	return dir + "/" + p
}

// All returns every loaded record in index order.
func (c *Catalog) All() []Record {
	return append([]Record(nil), c.records...)
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Categories returns category names in index order, including empty ones.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Category returns the records of one category.
func (c *Catalog) Category(name string) []Record {
	return c.filter(func(r Record) bool { return r.Category == name })
}

// Featured returns records marked isFeatured.
func (c *Catalog) Featured() []Record {
	return c.filter(func(r Record) bool { return r.Featured })
}

// Filter returns records whose title, description or tags contain query.
// An empty query returns everything.
func (c *Catalog) Filter(query string) []Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.All()
	}
	return c.filter(func(r Record) bool { return r.matches(query) })
}

// Find returns the record with the given ID.
func (c *Catalog) Find(id string) (Record, bool) {
	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

func (c *Catalog) filter(keep func(Record) bool) []Record {
	var out []Record
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
