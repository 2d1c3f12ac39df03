package domain

// History is the append-only record of posts the agent published and of the
// posts it answered.
type History struct {
	Posts []Post
}

func (h History) HasReplyTo(postID string, agentUserID string) bool {
	if postID == "" {
		return false
	}

	for _, post := range h.Posts {
		if post.InReplyToID == postID && post.AuthorID == agentUserID {
			return true
		}
	}

	return false
}

func (h *History) Append(posts ...Post) {
	h.Posts = append(h.Posts, posts...)
}

func (h History) Len() int {
	return len(h.Posts)
}

// AuthoredBy returns the posts written by authorID, oldest first.
func (h History) AuthoredBy(authorID string) []Post {
	posts := make([]Post, 0, len(h.Posts))
	for _, post := range h.Posts {
		if authorID != "" && post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}

	return posts
}
