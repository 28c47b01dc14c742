package domain

import "io"

// UploadFile - файл для загрузки на бэкенд (изображение или видео)
type UploadFile struct {
	Name        string
	ContentType string
	Content     io.Reader
}
