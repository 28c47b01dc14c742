package domain

// PageMeta - метаданные пагинации. Page начинается с 1,
// Pages вычисляет сервер, консоль их не пересчитывает.
type PageMeta struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// Page - конверт постраничного ответа
type Page[T any] struct {
	Items []T
	Meta  *PageMeta
}

// CurrentPage возвращает номер страницы, при отсутствии метаданных - 1.
func (m *PageMeta) CurrentPage() int {
	if m == nil || m.Page == 0 {
		return 1
	}
	return m.Page
}

// TotalPages возвращает количество страниц, при отсутствии метаданных - 1.
func (m *PageMeta) TotalPages() int {
	if m == nil || m.Pages == 0 {
		return 1
	}
	return m.Pages
}

// CanPrev - доступна ли кнопка "Prev"
func (m *PageMeta) CanPrev() bool {
	return m.CurrentPage() > 1
}

// CanNext - доступна ли кнопка "Next"
func (m *PageMeta) CanNext() bool {
	return m.TotalPages() > m.CurrentPage()
}
