package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL_MinIOPathStyle(t *testing.T) {
	client := &Client{bucket: "storysprout"}

	key := client.KeyFromURL("http://localhost:9000/storysprout/stories/abc123.jpg")
	assert.Equal(t, "stories/abc123.jpg", key)
}

func TestKeyFromURL_VirtualHostStyle(t *testing.T) {
	client := &Client{bucket: "storysprout"}

	key := client.KeyFromURL("https://storysprout.s3.us-east-1.amazonaws.com/videos/clip.mp4")
	assert.Equal(t, "videos/clip.mp4", key)
}

func TestKeyFromURL_OtherBucket(t *testing.T) {
	client := &Client{bucket: "storysprout"}

	assert.Equal(t, "", client.KeyFromURL("http://localhost:9000/other-bucket/stories/abc.jpg"))
	assert.Equal(t, "", client.KeyFromURL("not a url"))
	assert.Equal(t, "", client.KeyFromURL(""))
}

func TestKeyFromURL_NestedKey(t *testing.T) {
	client := &Client{bucket: "storysprout"}

	key := client.KeyFromURL("http://minio:9000/storysprout/posts/2026/08/cover.png")
	assert.Equal(t, "posts/2026/08/cover.png", key)
}
