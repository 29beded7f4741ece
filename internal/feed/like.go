package feed

// LikeState is the local like toggle of a post or reel.
type LikeState struct {
	IsLiked   bool `json:"is_liked"`
	LikeCount int  `json:"like_count"`
}

// Toggle flips IsLiked and moves LikeCount by one in the same direction.
// Two toggles return the state to where it started.
func (s *LikeState) Toggle() LikeState {
	if s.IsLiked {
		s.IsLiked = false
		s.LikeCount--
	} else {
		s.IsLiked = true
		s.LikeCount++
	}
	return *s
}

// Likes returns a copy of the current state.
func (s *LikeState) Likes() LikeState { return *s }

// Likeable is implemented by every feed item that carries a LikeState.
type Likeable interface {
	Likes() LikeState
	Toggle() LikeState
}
