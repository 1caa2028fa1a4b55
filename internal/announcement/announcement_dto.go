package announcement

type CreateAnnouncementRequest struct {
	Title        string `json:"title" binding:"required,max=160"`
	BodyHTML     string `json:"bodyHtml" binding:"required_without=DocumentPath"`
	DocumentPath string `json:"documentPath" binding:"max=200"`
}

type AnnouncementResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	BodyHTML        string `json:"bodyHtml,omitempty"`
	DocumentPath    string `json:"documentPath,omitempty"`
	PublishedByID   string `json:"publishedById,omitempty"`
	PublishedByName string `json:"publishedByName,omitempty"`
	PublishedAt     string `json:"publishedAt"`
}
