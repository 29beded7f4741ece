package feed

// Post is an image post in the posts feed.
type Post struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	AvatarRef string `json:"avatar_ref"`
	MediaRef  string `json:"media_ref"`
	Caption   string `json:"caption"`
	Comments  int    `json:"comments"`
	Timestamp string `json:"timestamp"`
	LikeState
}

// Reel is a full-screen video or photo in the reels pager.
type Reel struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	AvatarRef string `json:"avatar_ref"`
	MediaRef  string `json:"media_ref"`
	Caption   string `json:"caption"`
	Comments  int    `json:"comments"`
	Shares    int    `json:"shares"`
	IsVideo   bool   `json:"is_video"`
	LikeState
}

// NewsItem is a read-only entry of the services news list.
type NewsItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	MediaRef  string `json:"media_ref"`
	Timestamp string `json:"timestamp"`
	Category  string `json:"category"`
}

// Service is a tile of the services grid.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IconRef     string `json:"icon_ref"`
	AccentColor string `json:"accent_color"`
	Description string `json:"description"`
}

// Ad is a page of the services carousel.
type Ad struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	MediaRef    string `json:"media_ref"`
	AccentColor string `json:"accent_color"`
}

// Profile is the signed-in user's public profile card.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	AvatarRef string `json:"avatar_ref"`
	Bio       string `json:"bio"`
	Posts     int    `json:"posts"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// LikeToggle is the payload of feed.like_toggled events.
type LikeToggle struct {
	ItemID string
	State  LikeState
}
