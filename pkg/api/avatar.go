package api

import (
	"encoding/base64"
	"fmt"
)

// DecodeAvatar восстанавливает исходные байты аватара из поля Avatar
// (стандартный алфавит base64 с паддингом)
func DecodeAvatar(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid avatar encoding: %w", err)
	}
	return data, nil
}
