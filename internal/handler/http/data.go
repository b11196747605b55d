package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/vidora/accounts/models"
)

// maxRegisterFormMemory caps the in-memory portion of a registration form;
// larger file parts spill to temporary files.
const maxRegisterFormMemory = 32 << 20

// Multipart form field names accepted by the registration endpoint.
const (
	fieldFullName   = "fullName"
	fieldEmail      = "email"
	fieldUsername   = "username"
	fieldPassword   = "password"
	fieldAvatar     = "avatar"
	fieldCoverImage = "coverImage"
)

// parseRegisterForm decodes the multipart registration form and stages the
// attached files into the local staging directory. Text fields are passed
// through unmodified; validation happens in the service layer.
//
// Missing file parts yield empty local paths rather than errors, again so
// that the service layer owns the "avatar is required" decision.
func (h *Handler) parseRegisterForm(r *http.Request) (models.RegisterUserRequest, error) {
	if err := r.ParseMultipartForm(maxRegisterFormMemory); err != nil {
		return models.RegisterUserRequest{}, fmt.Errorf("parsing multipart form failed: %w", err)
	}

	avatarPath, err := h.stageFormFile(r, fieldAvatar)
	if err != nil {
		return models.RegisterUserRequest{}, err
	}

	coverImagePath, err := h.stageFormFile(r, fieldCoverImage)
	if err != nil {
		return models.RegisterUserRequest{}, err
	}

	return models.RegisterUserRequest{
		FullName:            r.FormValue(fieldFullName),
		Email:               r.FormValue(fieldEmail),
		Username:            r.FormValue(fieldUsername),
		Password:            r.FormValue(fieldPassword),
		AvatarLocalPath:     avatarPath,
		CoverImageLocalPath: coverImagePath,
	}, nil
}

// stageFormFile copies the named multipart file part into the staging
// directory and returns the staged path. A missing part is not an error; the
// returned path is empty. Staged names are prefixed with a fresh UUID so
// concurrent registrations never collide.
func (h *Handler) stageFormFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading form file %q failed: %w", field, err)
	}
	defer file.Close()

	if err = os.MkdirAll(h.stagingDir, 0o750); err != nil {
		return "", fmt.Errorf("creating staging directory failed: %w", err)
	}

	stagedPath := filepath.Join(h.stagingDir, uuid.NewString()+"-"+sanitizeFilename(header))
	if err = copyToFile(stagedPath, file); err != nil {
		return "", fmt.Errorf("staging form file %q failed: %w", field, err)
	}

	return stagedPath, nil
}

// sanitizeFilename reduces the client-supplied filename to its base name so
// staged paths never escape the staging directory.
func sanitizeFilename(header *multipart.FileHeader) string {
	name := filepath.Base(filepath.Clean(header.Filename))
	if name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return name
}

func copyToFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}

	return dst.Close()
}
