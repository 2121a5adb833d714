package seed

import (
	"fmt"
	"log"
	"strings"

	"lumagram/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
	// MaxDays bounds how far back generated timestamps reach
	MaxDays int
}

var hashtags = []string{
	"travel", "food", "fitness", "photography", "nature", "music", "art",
	"fashion", "coding", "coffee", "sunset", "pets", "books", "gaming",
	"architecture", "street", "portrait", "ocean", "mountains", "city",
}

// Seeder populates the database with generated demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// ClearAll truncates every application table. Dangerous by construction;
// callers opt in via the clean flag.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE save_items, saved_collections, comment_likes, post_likes,
		comments, stories, posts, hashtags, follows,
		chat_participants, messages, chats, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// Run executes the full seeding pass: users, the follow graph, hashtags,
// posts with comments and ratings, stories, saved collections and chats.
func (s *Seeder) Run() error {
	log.Printf("Seeding %d users and %d posts...", s.opts.NumUsers, s.opts.NumPosts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	follows, err := s.seedFollowGraph(users)
	if err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}
	log.Printf("Created %d follow edges", follows)

	tags, err := s.seedHashtags()
	if err != nil {
		return fmt.Errorf("failed to create hashtags: %w", err)
	}
	log.Printf("Created %d hashtags", len(tags))

	posts, err := s.seedPosts(users, tags)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	comments, likes, err := s.seedEngagement(users, posts)
	if err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Printf("Created %d comments and %d ratings", comments, likes)

	stories, err := s.seedStories(users)
	if err != nil {
		return fmt.Errorf("failed to create stories: %w", err)
	}
	log.Printf("Created %d stories", stories)

	saved, err := s.seedSavedCollections(users, posts)
	if err != nil {
		return fmt.Errorf("failed to create saved collections: %w", err)
	}
	log.Printf("Created %d saved items", saved)

	chats, messages, err := s.seedChats(users)
	if err != nil {
		return fmt.Errorf("failed to create chats: %w", err)
	}
	log.Printf("Created %d chats with %d messages", chats, messages)

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *Seeder) seedUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, s.opts.NumUsers)

	// A few fixed accounts for manual testing.
	if s.opts.NumUsers >= 3 {
		for _, name := range []string{"luma", "demo", "test"} {
			name := name
			user, err := s.factory.CreateUser(func(u *models.User) {
				u.Username = name
				u.Email = fmt.Sprintf("%s@example.com", name)
				u.Nickname = strings.ToUpper(name[:1]) + name[1:]
				u.Bio = "One of the OGs."
			})
			if err != nil {
				// Already present from a previous run; skip.
				continue
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < s.opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// seedFollowGraph gives every user a handful of outgoing edges, skipping
// self-follows and duplicates.
func (s *Seeder) seedFollowGraph(users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}
	count := 0
	for _, follower := range users {
		numFollows := s.factory.rng.Intn(8) + 1
		seen := map[uint]bool{follower.ID: true}
		for i := 0; i < numFollows; i++ {
			target := users[s.factory.rng.Intn(len(users))]
			if seen[target.ID] {
				continue
			}
			seen[target.ID] = true
			if err := s.factory.CreateFollow(follower, target); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (s *Seeder) seedHashtags() ([]*models.Hashtag, error) {
	tags := make([]*models.Hashtag, 0, len(hashtags))
	for _, tag := range hashtags {
		hashtag, err := s.factory.CreateHashtag(tag)
		if err != nil {
			return nil, err
		}
		tags = append(tags, hashtag)
	}
	return tags, nil
}

func (s *Seeder) seedPosts(users []*models.User, tags []*models.Hashtag) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, s.opts.NumPosts)
	for i := 0; i < s.opts.NumPosts; i++ {
		user := users[s.factory.rng.Intn(len(users))]
		tag := tags[s.factory.rng.Intn(len(tags))]

		post, err := s.factory.CreatePost(user, tag)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}
	return posts, nil
}

// seedEngagement gives each post comments (with occasional replies) and
// ratings from random users.
func (s *Seeder) seedEngagement(users []*models.User, posts []*models.Post) (int, int, error) {
	comments, likes := 0, 0
	for _, post := range posts {
		numComments := s.factory.rng.Intn(5)
		var lastRoot *models.Comment
		for i := 0; i < numComments; i++ {
			user := users[s.factory.rng.Intn(len(users))]

			// ~1 in 3 comments replies to the previous root
			var parent *models.Comment
			if lastRoot != nil && s.factory.rng.Intn(3) == 0 {
				parent = lastRoot
			}

			comment, err := s.factory.CreateComment(user, post, parent)
			if err != nil {
				return comments, likes, err
			}
			comments++
			if parent == nil {
				lastRoot = comment
			} else if s.factory.rng.Intn(2) == 0 {
				// some replies get a rating of their own
				liked := gofakeit.Bool()
				if err := s.factory.CreateCommentLike(user, comment, &liked); err != nil {
					return comments, likes, err
				}
				likes++
			}
		}

		numLikes := s.factory.rng.Intn(6)
		seen := map[uint]bool{}
		for i := 0; i < numLikes; i++ {
			user := users[s.factory.rng.Intn(len(users))]
			if seen[user.ID] {
				continue
			}
			seen[user.ID] = true
			// dislikes are rare but real
			if err := s.factory.CreatePostLike(user, post, s.factory.rng.Intn(10) != 0); err != nil {
				return comments, likes, err
			}
			likes++
		}
	}
	return comments, likes, nil
}

func (s *Seeder) seedStories(users []*models.User) (int, error) {
	count := 0
	for _, user := range users {
		if s.factory.rng.Intn(3) != 0 {
			continue
		}
		if _, err := s.factory.CreateStory(user); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (s *Seeder) seedSavedCollections(users []*models.User, posts []*models.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}
	count := 0
	for _, user := range users {
		numSaved := s.factory.rng.Intn(3)
		seen := map[uint]bool{}
		for i := 0; i < numSaved; i++ {
			post := posts[s.factory.rng.Intn(len(posts))]
			if seen[post.ID] {
				continue
			}
			seen[post.ID] = true
			if err := s.factory.SavePost(user, post); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (s *Seeder) seedChats(users []*models.User) (int, int, error) {
	if len(users) < 2 {
		return 0, 0, nil
	}
	chats, messages := 0, 0
	numChats := len(users) / 2
	for i := 0; i < numChats; i++ {
		a := users[s.factory.rng.Intn(len(users))]
		b := users[s.factory.rng.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		participants := []*models.User{a, b}
		// occasional group chat
		if s.factory.rng.Intn(4) == 0 {
			c := users[s.factory.rng.Intn(len(users))]
			if c.ID != a.ID && c.ID != b.ID {
				participants = append(participants, c)
			}
		}

		chat, err := s.factory.CreateChat(participants...)
		if err != nil {
			return chats, messages, err
		}
		chats++

		numMessages := s.factory.rng.Intn(12) + 1
		for j := 0; j < numMessages; j++ {
			author := participants[s.factory.rng.Intn(len(participants))]
			if _, err := s.factory.CreateMessage(chat, author); err != nil {
				return chats, messages, err
			}
			messages++
		}
	}
	return chats, messages, nil
}
