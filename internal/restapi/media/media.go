package media

const (
	ContentTypeApplicationJson = "application/json"
	ContentTypeImagePng        = "image/png"
)
