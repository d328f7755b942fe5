package services

import (
	"testing"

	"vibespace/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRankBySimilarityOrdersByCosine(t *testing.T) {
	exact := models.Post{ID: primitive.NewObjectID(), Caption: "exact"}
	partial := models.Post{ID: primitive.NewObjectID(), Caption: "partial"}
	orthogonal := models.Post{ID: primitive.NewObjectID(), Caption: "orthogonal"}

	posts := []models.Post{orthogonal, exact, partial}
	query := []float32{1, 0}
	docs := [][]float32{
		{0, 1},   // orthogonal
		{1, 0},   // exact
		{1, 1},   // partial
	}

	out := RankBySimilarity(posts, query, docs, 0)

	assert.Equal(t, []models.Post{exact, partial, orthogonal}, out)
}

func TestRankBySimilarityNormalizesMagnitude(t *testing.T) {
	// A longer vector in the same direction must not outrank a closer one.
	near := models.Post{ID: primitive.NewObjectID()}
	far := models.Post{ID: primitive.NewObjectID()}

	posts := []models.Post{far, near}
	query := []float32{1, 0}
	docs := [][]float32{
		{10, 10}, // far: same direction as {1,1}, just scaled
		{1, 0.1}, // near
	}

	out := RankBySimilarity(posts, query, docs, 0)

	assert.Equal(t, near.ID, out[0].ID)
}

func TestRankBySimilarityTruncates(t *testing.T) {
	posts := make([]models.Post, 4)
	docs := make([][]float32, 4)
	for i := range posts {
		posts[i] = models.Post{ID: primitive.NewObjectID()}
		docs[i] = []float32{1, 0}
	}

	out := RankBySimilarity(posts, []float32{1, 0}, docs, 2)

	assert.Len(t, out, 2)
}

func TestRankBySimilarityMismatchedVectors(t *testing.T) {
	posts := []models.Post{{ID: primitive.NewObjectID()}}

	out := RankBySimilarity(posts, []float32{1}, nil, 0)

	assert.Empty(t, out)
}

func TestSearchTextIncludesHashtags(t *testing.T) {
	p := models.Post{Caption: "sunset run", Hashtags: []string{"fitness", "golden"}}
	assert.Equal(t, "sunset run #fitness #golden", searchText(p))
}

func TestNormalizeZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	assert.Equal(t, v, normalize(v))
}

func TestDotUsesShorterLength(t *testing.T) {
	assert.InDelta(t, 2.0, dot([]float32{1, 1, 1}, []float32{1, 1}), 1e-9)
}
