package payload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sast/hwboard/pkg/api"
)

// chunkSize размер блока чтения аватара
const chunkSize = 3 * 16 * 1024

// ErrNoContent означает, что файл результата не передан
var ErrNoContent = errors.New("result file is required")

// Encode собирает посылку из файла результата и необязательного аватара.
// content читается целиком как текст, avatar (может быть nil) кодируется в base64
// побайтово, без интерпретации как UTF-8.
func Encode(user string, content io.Reader, avatar io.Reader) (api.SubmitRequest, error) {
	if content == nil {
		return api.SubmitRequest{}, ErrNoContent
	}

	text, err := io.ReadAll(content)
	if err != nil {
		return api.SubmitRequest{}, fmt.Errorf("failed to read result file: %w", err)
	}

	req := api.SubmitRequest{
		User:    user,
		Content: string(text),
	}

	if avatar != nil {
		var buf bytes.Buffer
		if _, err := EncodeStream(&buf, avatar); err != nil {
			return api.SubmitRequest{}, fmt.Errorf("failed to encode avatar: %w", err)
		}
		req.Avatar = buf.String()
	}

	return req, nil
}

// EncodeFiles открывает файлы по путям и собирает посылку.
// Пустой avatarPath означает отсутствие аватара.
func EncodeFiles(user, contentPath, avatarPath string) (api.SubmitRequest, error) {
	if contentPath == "" {
		return api.SubmitRequest{}, ErrNoContent
	}

	content, err := os.Open(contentPath)
	if err != nil {
		return api.SubmitRequest{}, fmt.Errorf("failed to open result file: %w", err)
	}
	defer content.Close()

	var avatar io.Reader
	if avatarPath != "" {
		f, err := os.Open(avatarPath)
		if err != nil {
			return api.SubmitRequest{}, fmt.Errorf("failed to open avatar file: %w", err)
		}
		defer f.Close()
		avatar = f
	}

	return Encode(user, content, avatar)
}

// EncodeStream читает src блоками и пишет base64 (стандартный алфавит с паддингом) в dst.
// Возвращает количество прочитанных байт.
func EncodeStream(dst io.Writer, src io.Reader) (int64, error) {
	enc := base64.NewEncoder(base64.StdEncoding, dst)

	n, err := io.CopyBuffer(enc, src, make([]byte, chunkSize))
	if err != nil {
		_ = enc.Close()
		return n, err
	}

	// Close дописывает последний неполный блок и паддинг
	if err := enc.Close(); err != nil {
		return n, err
	}
	return n, nil
}

// EncodeBytes кодирует байты целиком
func EncodeBytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
