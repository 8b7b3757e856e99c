package entity

import "fmt"

// DecodePolicy определяет, что делать с файлом, который не удалось декодировать
type DecodePolicy string

const (
	PolicySkip DecodePolicy = "skip" // пропустить файл и записать предупреждение в лог
	PolicyKeep DecodePolicy = "keep" // сохранить запись с ошибкой
	PolicyFail DecodePolicy = "fail" // прервать загрузку
)

// ParseDecodePolicy разбирает политику из строки; пустая строка даёт PolicySkip
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch DecodePolicy(s) {
	case "":
		return PolicySkip, nil
	case PolicySkip, PolicyKeep, PolicyFail:
		return DecodePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown decode failure policy %q", s)
	}
}
