// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"lumagram/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Nickname: gofakeit.FirstName(),
		Bio:      gofakeit.Sentence(10),
		ImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Website:  gofakeit.URL(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateHashtag persists a hashtag, reusing an existing row for the same tag.
func (f *Factory) CreateHashtag(tag string) (*models.Hashtag, error) {
	hashtag := &models.Hashtag{}
	if err := f.db.Where(models.Hashtag{Tag: tag}).FirstOrCreate(hashtag).Error; err != nil {
		return nil, err
	}
	return hashtag, nil
}

// BuildPost constructs a post struct without persisting it. Useful for
// batching and for tests that never touch the database.
func (f *Factory) BuildPost(user *models.User, hashtag *models.Hashtag, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		UserID:      user.ID,
		HashtagID:   hashtag.ID,
		Description: gofakeit.Paragraph(1, 3, 5, "\n"),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
	}

	// ~1 in 5 posts carries a video instead of a photo
	if f.rng.Intn(5) == 0 {
		post.ImageURL = ""
		post.VideoURL = gofakeit.URL()
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, hashtag *models.Hashtag, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, hashtag, overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateFollow persists a follow edge between two users.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	follow := &models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}
	return f.db.Create(follow).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user. A non-nil parent makes it
// a reply.
func (f *Factory) CreateComment(user *models.User, post *models.Post, parent *models.Comment, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   gofakeit.Sentence(8),
		UserID: user.ID,
		PostID: post.ID,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreatePostLike persists a rating from `user` on `post`.
func (f *Factory) CreatePostLike(user *models.User, post *models.Post, like bool) error {
	rating := &models.PostLike{
		UserID: user.ID,
		PostID: post.ID,
		Like:   like,
	}
	return f.db.Create(rating).Error
}

// CreateCommentLike persists a rating from `user` on `comment`.
// A nil boolean records an undecided rating.
func (f *Factory) CreateCommentLike(user *models.User, comment *models.Comment, like *bool) error {
	rating := &models.CommentLike{
		UserID:    user.ID,
		CommentID: comment.ID,
		Like:      like,
	}
	return f.db.Create(rating).Error
}

// CreateStory constructs and persists a sample `models.Story`.
func (f *Factory) CreateStory(user *models.User, overrides ...func(*models.Story)) (*models.Story, error) {
	story := &models.Story{
		UserID:   user.ID,
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/story-%s/720/1280", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(story)
	}

	if err := f.db.Create(story).Error; err != nil {
		return nil, err
	}
	return story, nil
}

// SavePost places a post into the user's saved collection, creating the
// collection on first use.
func (f *Factory) SavePost(user *models.User, post *models.Post) error {
	collection := &models.Saved{}
	if err := f.db.Where(models.Saved{UserID: user.ID}).FirstOrCreate(collection).Error; err != nil {
		return err
	}
	item := &models.SaveItem{
		PostID:  post.ID,
		SavedID: collection.ID,
	}
	return f.db.Create(item).Error
}

// CreateChat persists a chat with the given participants.
func (f *Factory) CreateChat(participants ...*models.User) (*models.Chat, error) {
	chat := &models.Chat{}
	if err := f.db.Create(chat).Error; err != nil {
		return nil, err
	}
	for _, user := range participants {
		membership := &models.ChatParticipant{ChatID: chat.ID, UserID: user.ID}
		if err := f.db.Create(membership).Error; err != nil {
			return nil, err
		}
	}
	return chat, nil
}

// CreateMessage constructs and persists a sample `models.Message` in the
// provided chat from the provided author.
func (f *Factory) CreateMessage(chat *models.Chat, author *models.User, overrides ...func(*models.Message)) (*models.Message, error) {
	message := &models.Message{
		ChatID:   chat.ID,
		AuthorID: author.ID,
		Text:     gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(message)
	}

	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}
