package port

import "overview/internal/domain"

type Walker interface {
	Walk(root string) ([]domain.FileEntry, error)
}

type FileReader interface {
	ReadFile(path string) (string, error)
}
