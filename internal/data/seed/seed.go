// Package seed loads author and blog fixtures from YAML into the store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	types "github.com/yungbote/blogmanager-backend/internal/domain"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

// Embedded selects the built-in fixture instead of a file path.
const Embedded = "embedded"

//go:embed default.yaml
var defaultFixture []byte

type File struct {
	Authors []AuthorSpec `yaml:"authors"`
}

type AuthorSpec struct {
	ID      string     `yaml:"id"`
	Name    string     `yaml:"name"`
	Surname string     `yaml:"surname"`
	Blogs   []BlogSpec `yaml:"blogs"`
}

type BlogSpec struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Content     string   `yaml:"content"`
	Tags        []string `yaml:"tags"`
}

type Result struct {
	Authors int
	Blogs   int
	Skipped int
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	for i, a := range f.Authors {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("seed author %d: name required", i)
		}
		if strings.TrimSpace(a.ID) == "" {
			return nil, fmt.Errorf("seed author %d: id required", i)
		}
		if _, err := uuid.Parse(a.ID); err != nil {
			return nil, fmt.Errorf("seed author %d: bad id %q: %w", i, a.ID, err)
		}
		for j, b := range a.Blogs {
			if strings.TrimSpace(b.Title) == "" {
				return nil, fmt.Errorf("seed author %d blog %d: title required", i, j)
			}
		}
	}
	return &f, nil
}

func Default() (*File, error) { return Parse(defaultFixture) }

// Load reads path, or the embedded fixture when path is Embedded.
func Load(path string) (*File, error) {
	path = strings.TrimSpace(path)
	if path == Embedded {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Apply inserts f in a single transaction. Authors whose id already exists are skipped
// together with their blogs, so applying the same fixture twice is a no-op.
func Apply(ctx context.Context, db *gorm.DB, log *logger.Logger, f *File) (Result, error) {
	var res Result
	if f == nil {
		return res, nil
	}
	log = log.With("component", "Seeder")

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		authorRepo := repos.NewAuthorRepo(tx, log)
		blogRepo := repos.NewBlogRepo(tx, log)

		for _, spec := range f.Authors {
			author := types.NewAuthor(spec.Name, spec.Surname)
			author.ID = uuid.MustParse(spec.ID)
			existing, err := authorRepo.GetByID(dbc, author.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				res.Skipped++
				continue
			}
			if _, err := authorRepo.Add(dbc, author); err != nil {
				return fmt.Errorf("seed author %q: %w", spec.Name, err)
			}
			res.Authors++

			for _, b := range spec.Blogs {
				blog := types.NewBlog(author.ID, b.Title, b.Description, b.Content, b.Tags)
				if _, err := blogRepo.Add(dbc, blog); err != nil {
					return fmt.Errorf("seed blog %q: %w", b.Title, err)
				}
				res.Blogs++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	log.Info("Seed applied", "authors", res.Authors, "blogs", res.Blogs, "skipped", res.Skipped)
	return res, nil
}
