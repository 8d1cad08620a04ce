package request

type IssueCouponRequest struct {
	Slug string `json:"slug" binding:"required"`
}

type UseCouponRequest struct {
	ShortCode string `json:"short_code" binding:"required"`
}

type CouponListQuery struct {
	Status *string `form:"status"`
}

type PresignUploadRequest struct {
	ImageType   string `json:"image_type" binding:"required,oneof=store license"`
	Filename    string `json:"filename" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required"`
}
