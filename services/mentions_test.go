package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	out := ExtractMentions("shoutout to @alice and @bob.builder!")
	assert.Equal(t, []string{"alice", "bob.builder"}, out)
}

func TestExtractMentionsDedupes(t *testing.T) {
	out := ExtractMentions("@alice again @alice and @carol")
	assert.Equal(t, []string{"alice", "carol"}, out)
}

func TestExtractMentionsNone(t *testing.T) {
	assert.Nil(t, ExtractMentions("no mentions here"))
	assert.Nil(t, ExtractMentions(""))
}
