package menu

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Menus []Menu `yaml:"menus"`
}

// Catalog 불변 메뉴 카탈로그
type Catalog struct {
	menus       []Menu
	byID        map[string]int
	fingerprint string
}

// DefaultCatalog 바이너리에 포함된 기본 카탈로그
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(embeddedCatalog))
}

// LoadCatalogFile 경로가 비어 있으면 기본 카탈로그를 쓴다
func LoadCatalogFile(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog YAML 카탈로그를 읽고 검증한다
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return NewCatalog(file.Menus)
}

// NewCatalog 메뉴 목록을 검증해 카탈로그를 만든다. 순서는 유지된다
func NewCatalog(menus []Menu) (*Catalog, error) {
	if len(menus) == 0 {
		return nil, errors.New("catalog has no menus")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	c := &Catalog{
		menus: make([]Menu, len(menus)),
		byID:  make(map[string]int, len(menus)),
	}
	names := make(map[string]string, len(menus))

	for i, m := range menus {
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("menu #%d (%s): %w", i, m.ID, err)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate menu id %q", m.ID)
		}
		key := strings.ToLower(m.DisplayName)
		if other, dup := names[key]; dup {
			return nil, fmt.Errorf("duplicate display name %q (%s, %s)", m.DisplayName, other, m.ID)
		}
		names[key] = m.ID
		c.byID[m.ID] = i
		m.Synonyms = append([]string(nil), m.Synonyms...)
		c.menus[i] = m
	}
	c.fingerprint = fingerprint(c.menus)
	return c, nil
}

func fingerprint(menus []Menu) string {
	h := sha256.New()
	for _, m := range menus {
		fmt.Fprintf(h, "%s\x00%s\x00%s\x00%s\x00%s\x00%t\x00%s\x00%d\x00%d\x00%s\x00%s\x1e",
			m.ID, m.CanonicalName, m.DisplayName, m.Cuisine, m.Base, m.HasSoup, m.Protein,
			m.SpicyLevel, m.HeavyLevel, m.PriceRange, strings.Join(m.Synonyms, "\x1f"))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Menus 카탈로그 순서의 사본
func (c *Catalog) Menus() []Menu {
	out := make([]Menu, len(c.menus))
	for i, m := range c.menus {
		m.Synonyms = append([]string(nil), m.Synonyms...)
		out[i] = m
	}
	return out
}

// Len 메뉴 수
func (c *Catalog) Len() int { return len(c.menus) }

// At 카탈로그 순서의 i번째 메뉴
func (c *Catalog) At(i int) Menu { return c.menus[i] }

// ByID id로 메뉴 조회
func (c *Catalog) ByID(id string) (Menu, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Menu{}, false
	}
	return c.menus[i], true
}

// FindByName 표시명, 정규명, 동의어 중 하나와 대소문자 무시 일치하는 첫 메뉴
func (c *Catalog) FindByName(name string) (Menu, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Menu{}, false
	}
	for _, m := range c.menus {
		if strings.ToLower(m.DisplayName) == key || strings.ToLower(m.CanonicalName) == key {
			return m, true
		}
		for _, s := range m.Synonyms {
			if strings.ToLower(s) == key {
				return m, true
			}
		}
	}
	return Menu{}, false
}

// Fingerprint 카탈로그 내용 해시
func (c *Catalog) Fingerprint() string { return c.fingerprint }
