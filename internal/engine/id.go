package engine

import "github.com/google/uuid"

func defaultID() string {
	return uuid.NewString()
}
