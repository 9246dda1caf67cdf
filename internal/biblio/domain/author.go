package domain

import "time"

// Author of one or more books. Names are unique.
type Author struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
