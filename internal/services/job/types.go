package job

// FeedFormRequest asks for a TikTok feed product form.
type FeedFormRequest struct {
	ProductID  string   `json:"product_id"`
	Title      string   `json:"title"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
	Highlights []string `json:"highlights"`
}

// VideoRequest asks for a product video render.
type VideoRequest struct {
	ProductID       string `json:"product_id"`
	ScriptStyle     string `json:"script_style"`
	DurationSeconds int    `json:"duration_seconds"`
}

// UploadRequest asks for a TikTok Shop affiliate upload.
type UploadRequest struct {
	JobReference  string `json:"job_reference"`
	ShopID        string `json:"shop_id"`
	CreatorHandle string `json:"creator_handle"`
}
