package models

// Announcement — объявление менеджера, коллекция "announcements".
// После создания не редактируется, только удаляется.
type Announcement struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Timestamp  int64  `json:"timestamp"`
	AuthorName string `json:"authorName"`
}
