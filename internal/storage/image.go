package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrInvalidImage = errors.New("invalid image data")

// Image is decoded image payload with its sniffed type.
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeImage accepts a base64 data URI ("data:image/png;base64,...") or a
// bare base64 string. The declared media type is ignored; the content type
// is sniffed from the bytes and must be an image.
func DecodeImage(image string) (*Image, error) {
	payload := strings.TrimSpace(image)

	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("%w: expected base64 data URI", ErrInvalidImage)
		}
		payload = body
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	mtype := mimetype.Detect(data)
	contentType, _, _ := strings.Cut(mtype.String(), ";")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: unsupported content type %s", ErrInvalidImage, contentType)
	}

	return &Image{
		Data:        data,
		ContentType: contentType,
		Extension:   mtype.Extension(),
	}, nil
}

func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if data, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return data, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
