package rest

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxUploadMemory - сколько multipart-данных держать в памяти, остальное уходит во временные файлы
const maxUploadMemory = 32 << 20

// maxUploadBytes - предел размера всего тела запроса загрузки
var maxUploadBytes int64 = 200 << 20

// HandleDeleteProperty - DELETE /api/console/properties/{id}
func (h *ConsoleHandlers) HandleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.properties.Delete(r.Context(), id)
	respondWithState(w, r, err, renderProperties(h.properties.Snapshot()))
}

// HandleNewPropertyForm - GET /api/console/properties/new
func (h *ConsoleHandlers) HandleNewPropertyForm(w http.ResponseWriter, r *http.Request) {
	err := h.form.Open(r.Context(), "")
	respondWithState(w, r, err, h.form.Snapshot())
}

// HandleOpenPropertyForm - GET /api/console/properties/{id}
func (h *ConsoleHandlers) HandleOpenPropertyForm(w http.ResponseWriter, r *http.Request) {
	err := h.form.Open(r.Context(), chi.URLParam(r, "id"))
	respondWithState(w, r, err, h.form.Snapshot())
}

func (h *ConsoleHandlers) HandleCreateProperty(w http.ResponseWriter, r *http.Request) {
	h.saveProperty(w, r, "")
}

func (h *ConsoleHandlers) HandleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	h.saveProperty(w, r, chi.URLParam(r, "id"))
}

func (h *ConsoleHandlers) saveProperty(w http.ResponseWriter, r *http.Request, id string) {
	var values domain.PropertyFormValues
	if !decodeBody(w, r, &values, false) {
		return
	}
	_, err := h.form.Save(r.Context(), id, values)
	respondWithState(w, r, err, h.form.Snapshot())
}

// HandleUploadImages - POST /api/console/uploads/images, файлы в поле "files"
func (h *ConsoleHandlers) HandleUploadImages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleUploadImages"})

	if !parseUploadForm(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	files, closeAll, err := openUploadFiles(headers)
	if err != nil {
		logger.Error("Failed to open uploaded files", err, nil)
		WriteJSONError(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}
	defer closeAll()

	urls, err := h.form.UploadImages(r.Context(), files)
	if err != nil {
		respondWithState(w, r, err, h.form.Snapshot())
		return
	}
	logger.Info("Images uploaded", port.Fields{"count": len(urls)})
	RespondWithJSON(w, http.StatusOK, UploadImagesResponseDTO{URLs: urls, State: h.form.Snapshot()})
}

// HandleUploadVideo - POST /api/console/uploads/video, файл в поле "file"
func (h *ConsoleHandlers) HandleUploadVideo(w http.ResponseWriter, r *http.Request) {
	if !parseUploadForm(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "Field 'file' is required")
		return
	}
	files, closeAll, err := openUploadFiles(headers[:1])
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	defer closeAll()

	url, err := h.form.UploadVideo(r.Context(), files[0])
	if err != nil {
		respondWithState(w, r, err, h.form.Snapshot())
		return
	}
	RespondWithJSON(w, http.StatusOK, UploadVideoResponseDTO{URL: url, State: h.form.Snapshot()})
}

// parseUploadForm ограничивает тело запроса и разбирает multipart-форму
func parseUploadForm(w http.ResponseWriter, r *http.Request) bool {
	if r.ContentLength > maxUploadBytes {
		WriteJSONError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", maxUploadBytes))
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", tooLarge.Limit))
			return false
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid multipart form: %v", err))
		return false
	}
	return true
}

func openUploadFiles(headers []*multipart.FileHeader) ([]domain.UploadFile, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	files := make([]domain.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open %q: %w", header.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, domain.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     f,
		})
	}
	return files, closeAll, nil
}
