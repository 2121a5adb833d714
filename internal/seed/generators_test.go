package seed

import (
	"net/url"
	"testing"
	"time"

	"lumagram/internal/models"
)

func TestBuildPost_MediaAndTimestamps(t *testing.T) {
	opts := Options{MaxDays: 30}
	f := NewFactory(nil, opts)
	user := &models.User{ID: 1}
	tag := &models.Hashtag{ID: 2, Tag: "travel"}

	for i := 0; i < 50; i++ {
		p := f.BuildPost(user, tag)

		if p.UserID != user.ID || p.HashtagID != tag.ID {
			t.Fatalf("post not bound to author and hashtag: %+v", p)
		}
		if p.ImageURL == "" && p.VideoURL == "" {
			t.Fatalf("post has no media")
		}
		if p.ImageURL != "" {
			if _, err := url.ParseRequestURI(p.ImageURL); err != nil {
				t.Fatalf("invalid image url: %v", err)
			}
		}
		if p.Description == "" {
			t.Fatalf("post has no description")
		}

		// timestamp should be within MaxDays
		if time.Since(p.CreatedAt) > (time.Duration(opts.MaxDays)+1)*24*time.Hour {
			t.Fatalf("created_at too old: %v", p.CreatedAt)
		}
	}
}

func TestBuildPost_Overrides(t *testing.T) {
	f := NewFactory(nil, Options{})
	user := &models.User{ID: 1}
	tag := &models.Hashtag{ID: 2}

	p := f.BuildPost(user, tag, func(post *models.Post) {
		post.Description = "fixed"
		post.ImageURL = "https://example.com/p.jpg"
		post.VideoURL = ""
	})

	if p.Description != "fixed" || p.ImageURL != "https://example.com/p.jpg" {
		t.Fatalf("overrides not applied: %+v", p)
	}
}
