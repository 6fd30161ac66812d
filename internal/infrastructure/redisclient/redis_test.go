package redisclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
