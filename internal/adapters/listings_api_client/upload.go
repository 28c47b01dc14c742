package listings_api_client

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// formFile - файл внутри multipart-формы
type formFile struct {
	field string
	file  domain.UploadFile
}

// Upload отправляет multipart-форму. Заголовок JSON не ставится,
// Content-Type формирует multipart writer.
func (c *Client) Upload(ctx context.Context, path string, files []formFile, out any, fallback string) error {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "ListingsApiClient",
		"path":       path,
		"file_count": len(files),
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		if err := writeFormFile(writer, f); err != nil {
			clientLogger.Error("Failed to build multipart form", err, nil)
			return fmt.Errorf("failed to build multipart form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	clientLogger.Debug("Uploading files to listings backend", port.Fields{"bytes": body.Len()})
	resp, err := c.doRequest(ctx, http.MethodPost, path, body, writer.FormDataContentType())
	if err != nil {
		clientLogger.Error("Failed to perform upload request", err, nil)
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, out, fallback, clientLogger)
}

func writeFormFile(writer *multipart.Writer, f formFile) error {
	contentType := f.file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(f.field), escapeQuotes(f.file.Name)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if f.file.Content == nil {
		return nil
	}
	_, err = io.Copy(part, f.file.Content)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// UploadImage загружает одно изображение и возвращает его URL
func (c *Client) UploadImage(ctx context.Context, file domain.UploadFile) (string, error) {
	var resp uploadResponse
	if err := c.Upload(ctx, "/api/upload/image", []formFile{{field: "file", file: file}}, &resp, domain.MsgUploadFailed); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", domain.NewRequestError(http.StatusOK, domain.MsgUploadFailed)
	}
	return resp.URL, nil
}

// UploadImages загружает несколько изображений, возвращает непустые URL
func (c *Client) UploadImages(ctx context.Context, files []domain.UploadFile) ([]string, error) {
	form := make([]formFile, 0, len(files))
	for _, f := range files {
		form = append(form, formFile{field: "files", file: f})
	}

	var resp uploadManyResponse
	if err := c.Upload(ctx, "/api/upload/images", form, &resp, domain.MsgUploadFailed); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(resp.Files))
	for _, f := range resp.Files {
		if f.URL != "" {
			urls = append(urls, f.URL)
		}
	}
	if len(urls) == 0 {
		return nil, domain.NewRequestError(http.StatusOK, domain.MsgUploadFailed)
	}
	return urls, nil
}

// UploadVideo загружает видео и возвращает его URL
func (c *Client) UploadVideo(ctx context.Context, file domain.UploadFile) (string, error) {
	var resp uploadResponse
	if err := c.Upload(ctx, "/api/upload/video", []formFile{{field: "file", file: file}}, &resp, domain.MsgUploadFailed); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", domain.NewRequestError(http.StatusOK, domain.MsgUploadFailed)
	}
	return resp.URL, nil
}
