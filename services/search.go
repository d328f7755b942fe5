package services

import (
	"context"
	"log"
	"math"
	"sort"

	"vibespace/ai"
	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const searchLimit = 15

type SearchService struct {
	posts *mongo.Collection
	users *mongo.Collection
	ai    ai.Inference
}

func NewSearchService(posts, users *mongo.Collection, inference ai.Inference) *SearchService {
	return &SearchService{posts: posts, users: users, ai: inference}
}

// Semantic ranks published posts against a free-text query by embedding
// similarity. The query and all captions go out in one embedding batch; an
// embedding failure degrades to empty results rather than failing the request.
func (s *SearchService) Semantic(ctx context.Context, query string) ([]models.Post, error) {
	cursor, err := s.posts.Find(ctx, bson.M{"status": models.PostStatusPublished})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []models.Post{}, nil
	}

	inputs := make([]string, 0, len(posts)+1)
	inputs = append(inputs, query)
	for _, p := range posts {
		inputs = append(inputs, searchText(p))
	}

	vectors, err := s.ai.Embed(ctx, inputs)
	if err != nil {
		log.Printf("[Search] Embedding failed, returning empty results: %v", err)
		return []models.Post{}, nil
	}

	ranked := RankBySimilarity(posts, vectors[0], vectors[1:], searchLimit)
	newUserCache(s.users).decoratePosts(ctx, ranked)
	return ranked, nil
}

func searchText(p models.Post) string {
	text := p.Caption
	for _, h := range p.Hashtags {
		text += " #" + h
	}
	return text
}

// RankBySimilarity orders posts by the dot product of their vectors against
// the query vector, highest first, truncated to limit. Vectors are normalized
// locally first, so scores are cosine similarities whether or not the
// embedding provider pre-normalizes.
func RankBySimilarity(posts []models.Post, queryVec []float32, docVecs [][]float32, limit int) []models.Post {
	if len(docVecs) != len(posts) {
		return []models.Post{}
	}

	q := normalize(queryVec)
	type scored struct {
		post  models.Post
		score float64
	}
	ranked := make([]scored, len(posts))
	for i, p := range posts {
		ranked[i] = scored{post: p, score: dot(q, normalize(docVecs[i]))}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]models.Post, len(ranked))
	for i, r := range ranked {
		out[i] = r.post
	}
	return out
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
