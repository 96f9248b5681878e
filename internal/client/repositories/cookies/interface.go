package cookies

import (
	"context"
	"time"
)

// Cookie is a stored name/value pair with an absolute expiry.
type Cookie struct {
	Name    string
	Value   string
	Expires time.Time
}

// Repository is the client's cookie jar. Expired cookies read as absent.
type Repository interface {
	Create(ctx context.Context, name, value string, expires time.Time) error
	Read(ctx context.Context, name string) (string, bool, error)
	Get(ctx context.Context, name string) (Cookie, bool, error)
	Delete(ctx context.Context, name string) error
}
