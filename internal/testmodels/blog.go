// Package testmodels provides a small blog domain used by engine and
// command tests. The method bodies double as classifier input: the
// inspector parses this file to discover accessors and relationships.
package testmodels

import (
	"strings"

	"github.com/recordlens/recordlens/internal/model"
)

// User writes posts and comments.
type User struct {
	model.Base
	ID    int64
	Name  string
	Email string
}

func (u *User) Policy() model.FieldPolicy {
	return model.FieldPolicy{
		Fillable: []string{"name", "email"},
		Hidden:   []string{"password", "remember_token"},
	}
}

// Posts are the articles the user has written.
func (u *User) Posts() *model.HasMany {
	return u.HasMany(&Post{})
}

// Comments reaches the user's comments through their posts.
func (u *User) Comments() *model.HasManyThrough {
	return u.HasManyThrough(&Comment{}, &Post{})
}

// Initials is a plain helper, not an attribute and not a relationship.
func (u *User) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(u.Name) {
		b.WriteString(strings.ToUpper(part[:1]))
	}
	return b.String()
}

// Post is one published article.
type Post struct {
	model.Base
	ID    int64
	Title string
	Body  string
}

func (p *Post) Connection() string { return "blog" }

func (p *Post) Policy() model.FieldPolicy {
	return model.FieldPolicy{
		Fillable: []string{"title", "body", "published_at"},
		Hidden:   []string{"secret_token"},
		Casts:    map[string]string{"settings": "json"},
		Dates:    []string{"published_at"},
		Appends:  []string{"excerpt"},
	}
}

func (p *Post) Attributes() map[string]any {
	return map[string]any{"status": "draft"}
}

// GetExcerptAttribute computes the appended excerpt attribute.
func (p *Post) GetExcerptAttribute() string {
	if len(p.Body) <= 80 {
		return p.Body
	}
	return p.Body[:80] + "…"
}

// GetTitleAttribute shadows the physical title column; the column wins
// during discovery, but the column's cast reports the accessor.
func (p *Post) GetTitleAttribute() string {
	return strings.ToUpper(p.Title)
}

// ReadingTime declares an attribute-object style mutator.
func (p *Post) ReadingTime() model.Attribute {
	return model.Attribute{
		Get: func(_ any, attrs map[string]any) any {
			body, _ := attrs["body"].(string)
			return len(strings.Fields(body)) / 200
		},
	}
}

// Author is the user who wrote the post.
func (p *Post) Author() *model.BelongsTo {
	return p.BelongsTo(&User{})
}

// Comments on the post.
func (p *Post) Comments() *model.HasMany {
	return p.HasMany(&Comment{})
}

// Tags attached to the post.
func (p *Post) Tags() *model.MorphToMany {
	return p.MorphToMany(&Tag{}, "taggable")
}

// Comment is a reader comment on a post.
type Comment struct {
	model.Base
	ID   int64
	Body string
}

func (c *Comment) TableName() string { return "post_comments" }

// Post is the commented article.
func (c *Comment) Post() *model.BelongsTo {
	return c.BelongsTo(&Post{})
}

// Commentable is the polymorphic parent of the comment.
func (c *Comment) Commentable() *model.MorphTo {
	return c.MorphTo()
}

// Tag labels posts through a polymorphic pivot.
type Tag struct {
	model.Base
	ID   int64
	Name string
}

// Posts carrying the tag.
func (t *Tag) Posts() *model.MorphedByMany {
	return t.MorphedByMany(&Post{}, "taggable")
}

// Metric lives in a connection-qualified table.
type Metric struct {
	model.Base
	ID    int64
	Value float64
}

func (m *Metric) TableName() string { return "stats.metrics" }

// RegisterAll registers every fixture model into the given registry.
// Called from this package so the source directory is captured here.
func RegisterAll(r *model.Registry) {
	r.Register(func() any { return &User{} })
	r.Register(func() any { return &Post{} })
	r.Register(func() any { return &Comment{} })
	r.Register(func() any { return &Tag{} })
	r.Register(func() any { return &Metric{} })
}
