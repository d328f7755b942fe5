package services

import (
	"testing"

	"vibespace/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func post(likes, comments int, sponsored bool) models.Post {
	return models.Post{
		ID:           primitive.NewObjectID(),
		Likes:        likes,
		CommentCount: comments,
		IsSponsored:  sponsored,
	}
}

func TestRelevanceScoreWeightsCommentsDouble(t *testing.T) {
	assert.Equal(t, 14, RelevanceScore(post(10, 2, false)))
	assert.Equal(t, 15, RelevanceScore(post(5, 5, false)))

	// A livelier thread beats more likes.
	assert.Greater(t, RelevanceScore(post(5, 5, false)), RelevanceScore(post(10, 2, false)))
}

func TestPartitionSponsoredKeepsRelativeOrder(t *testing.T) {
	r1 := post(1, 0, false)
	s1 := post(2, 0, true)
	r2 := post(3, 0, false)
	s2 := post(4, 0, true)

	out := PartitionSponsored([]models.Post{r1, s1, r2, s2})

	assert.Equal(t, []models.Post{s1, s2, r1, r2}, out)
}

func TestRankChronologicalOrdersByScore(t *testing.T) {
	low := post(1, 0, false)
	high := post(10, 5, false)
	mid := post(4, 1, false)

	out := RankChronological([]models.Post{low, high, mid}, 0)

	assert.Equal(t, []models.Post{high, mid, low}, out)
}

func TestRankChronologicalEqualScoresKeepSponsoredFirstOrder(t *testing.T) {
	// All four score the same; the sponsored pair must stay in front and
	// each pair must keep its input order.
	s1 := post(6, 0, true)
	s2 := post(6, 0, true)
	r1 := post(6, 0, false)
	r2 := post(6, 0, false)

	out := RankChronological([]models.Post{r1, s1, r2, s2}, 0)

	assert.Equal(t, []models.Post{s1, s2, r1, r2}, out)
}

func TestRankChronologicalTruncates(t *testing.T) {
	posts := []models.Post{post(3, 0, false), post(2, 0, false), post(1, 0, false)}

	out := RankChronological(posts, 2)

	assert.Len(t, out, 2)
	assert.Equal(t, posts[0], out[0])
}

func TestSimilarLikersExcludesSelfAndDedupes(t *testing.T) {
	me := primitive.NewObjectID()
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	liked := []models.Post{
		{LikedBy: []primitive.ObjectID{me, a}},
		{LikedBy: []primitive.ObjectID{a, b}},
	}

	out := SimilarLikers(liked, me)

	assert.Equal(t, []primitive.ObjectID{a, b}, out)
}

func TestSimilarLikersEmptyForNoLikes(t *testing.T) {
	assert.Empty(t, SimilarLikers(nil, primitive.NewObjectID()))
}

func TestDedupeByIDKeepsFirstOccurrence(t *testing.T) {
	p1 := post(1, 0, false)
	p2 := post(2, 0, false)
	dup := p1

	out := DedupeByID([]models.Post{p1, p2, dup})

	assert.Equal(t, []models.Post{p1, p2}, out)
}

func TestSortByRecencyNewestFirst(t *testing.T) {
	old := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100}
	mid := models.Post{ID: primitive.NewObjectID(), CreatedAt: 200}
	recent := models.Post{ID: primitive.NewObjectID(), CreatedAt: 300}

	posts := []models.Post{mid, old, recent}
	SortByRecency(posts)

	assert.Equal(t, []models.Post{recent, mid, old}, posts)
}
