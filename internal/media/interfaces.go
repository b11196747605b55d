package media

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/media_mock.go -package=mock

// Uploader pushes a locally staged file to the external media host and
// returns the public URL of the stored asset.
//
// Uploads are one-shot: a failed upload is reported immediately and never
// retried here. On success the staged file is removed from disk.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
