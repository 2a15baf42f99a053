package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"toolkit/core/failure"
)

// Decode decodes data and reports the format name it was decoded as.
func Decode(data []byte) (image.Image, string, error) {
	const op = "imaging.Decode"

	if len(data) == 0 {
		return nil, "", failure.Newf(failure.ErrInvalidFormat, op, "", "empty image")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", failure.New(failure.ErrInvalidFormat, op, "", err)
		}
		return nil, "", failure.New(failure.ErrDeserialization, op, format, err)
	}
	return img, format, nil
}

// DecodeConfig reads only the dimensions and color model of data.
func DecodeConfig(data []byte) (image.Config, string, error) {
	const op = "imaging.DecodeConfig"

	if len(data) == 0 {
		return image.Config{}, "", failure.Newf(failure.ErrInvalidFormat, op, "", "empty image")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return image.Config{}, "", failure.New(failure.ErrInvalidFormat, op, "", err)
		}
		return image.Config{}, "", failure.New(failure.ErrDeserialization, op, format, err)
	}
	return cfg, format, nil
}
