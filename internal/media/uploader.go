// Package media implements the outbound integration with the external media
// host that stores uploaded profile assets (avatars, cover images).
package media

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/vidora/accounts/internal/config"
	"github.com/vidora/accounts/internal/logger"
)

// uploadResponse is the relevant subset of the media host's upload reply.
type uploadResponse struct {
	URL string `json:"url"`
}

// httpUploader is the resty-based implementation of [Uploader]. It POSTs the
// staged file as a multipart request to the configured upload endpoint.
type httpUploader struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPUploader constructs an [Uploader] from the media-host configuration.
// It normalises and validates the upload URL and configures the underlying
// resty client with the request timeout and API key header.
//
// Returns an error if cfg.UploadURL is empty or cannot be parsed as a valid
// absolute URL.
func NewHTTPUploader(cfg config.Media, log *logger.Logger) (Uploader, error) {
	uploadURL, err := normalizeUploadURL(cfg.UploadURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media upload url: %w", err)
	}

	client := resty.New().
		SetBaseURL(uploadURL).
		SetTimeout(cfg.RequestTimeout)

	if cfg.APIKey != "" {
		client.SetHeader("X-Api-Key", cfg.APIKey)
	}

	return &httpUploader{client: client, logger: log}, nil
}

func normalizeUploadURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty upload url")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("upload url must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [Uploader]. It sends the file at localPath to the media
// host as a multipart POST and returns the public URL from the response. On
// success the staged file is removed from disk; on failure it is left in
// place for the staging janitor to collect.
func (u *httpUploader) Upload(ctx context.Context, localPath string) (string, error) {
	log := logger.FromContext(ctx)

	if localPath == "" {
		return "", ErrNoFileProvided
	}
	if _, err := os.Stat(localPath); err != nil {
		log.Err(err).Str("path", localPath).Msg("staged file is not readable")
		return "", fmt.Errorf("%w: %w", ErrNoFileProvided, err)
	}

	var result uploadResponse
	resp, err := u.client.R().
		SetContext(ctx).
		SetFile("file", localPath).
		SetFormData(map[string]string{"filename": filepath.Base(localPath)}).
		SetResult(&result).
		Post("")
	if err != nil {
		log.Err(err).Str("path", localPath).Msg("media upload request failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("path", localPath).Int("status", resp.StatusCode()).Msg("media host rejected upload")
		return "", fmt.Errorf("%w: media host returned status %d", ErrUploadFailed, resp.StatusCode())
	}
	if result.URL == "" {
		return "", fmt.Errorf("%w: media host returned no url", ErrUploadFailed)
	}

	if err := os.Remove(localPath); err != nil {
		// The upload went through; a leftover staged file is only a
		// disk-space concern and the janitor will pick it up.
		log.Warn().Err(err).Str("path", localPath).Msg("could not remove staged file after upload")
	}

	return result.URL, nil
}
