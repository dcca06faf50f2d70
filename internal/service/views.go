package service

// UserRef identifies a user in API responses
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LikeRef identifies a liker in a tweet view
type LikeRef struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// TweetView is a feed entry: a publication enriched with its
// attachment links, author, and like list.
type TweetView struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Attachments []string  `json:"attachments"`
	Author      UserRef   `json:"author"`
	Likes       []LikeRef `json:"likes"`
}

// ProfileView is a user profile with resolved follower/following lists
type ProfileView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Followers []UserRef `json:"followers"`
	Following []UserRef `json:"following"`
}
