package v1

import (
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/reelcat/pkg/imagehost"
)

// maxPreviewFiles caps a single previews upload.
const maxPreviewFiles = 4

// maxUploadMemory bounds how much of a multipart body is held in memory
// before spilling to disk.
const maxUploadMemory = 32 << 20

func (s *Server) uploadPoster(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("poster")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No poster file uploaded.")
		return
	}
	defer file.Close()

	url, err := s.uploader.Upload(r.Context(), s.cfg.PosterFolder, imagehost.PublicID("poster"), header.Filename, file)
	if err != nil {
		s.log.Error("poster upload failed", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "Image upload failed.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) uploadPreviews(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "No preview files uploaded.")
		return
	}
	files := r.MultipartForm.File["previews"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "No preview files uploaded.")
		return
	}
	if len(files) > maxPreviewFiles {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("A maximum of %d preview files is allowed.", maxPreviewFiles))
		return
	}

	// Uploads fan out concurrently; urls keeps the order the files were sent in.
	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(r.Context())
	for i, header := range files {
		g.Go(func() error {
			f, err := header.Open()
			if err != nil {
				return fmt.Errorf("open %s: %w", header.Filename, err)
			}
			defer f.Close()

			url, err := s.uploader.Upload(ctx, s.cfg.PreviewsFolder, imagehost.PublicID(fmt.Sprintf("previews-%d", i)), header.Filename, f)
			if err != nil {
				return fmt.Errorf("upload %s: %w", header.Filename, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("previews upload failed", "count", len(files), "error", err)
		writeError(w, http.StatusInternalServerError, "Image upload failed.")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"urls": urls})
}
