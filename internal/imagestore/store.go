// Package imagestore is the image collaborator behind the photo gallery.
// The Store contract is intentionally small so a hosted CDN can replace
// LocalStore without touching the handlers.
package imagestore

import "errors"

var ErrUnsupportedImage = errors.New("unsupported image data")

// Object identifies one stored image and where browsers can fetch it.
type Object struct {
	ID  string
	URL string
}

type Store interface {
	Save(data []byte, contentType string) (Object, error)
	Remove(id string) error
}
