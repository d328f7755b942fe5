package services

import (
	"sort"

	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelevanceScore weights comments double: a post with fewer likes but a
// livelier thread outranks a quietly liked one.
func RelevanceScore(p models.Post) int {
	return p.Likes + 2*p.CommentCount
}

// PartitionSponsored moves sponsored posts to the front, keeping the relative
// order inside each partition.
func PartitionSponsored(posts []models.Post) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.IsSponsored {
			out = append(out, p)
		}
	}
	for _, p := range posts {
		if !p.IsSponsored {
			out = append(out, p)
		}
	}
	return out
}

// RankChronological orders a recency-sorted batch for the following feed:
// sponsored posts first, then a stable sort by relevance score. Equal scores
// keep the sponsored-first, recency-within order from the earlier stages.
func RankChronological(posts []models.Post, limit int) []models.Post {
	out := PartitionSponsored(posts)
	sort.SliceStable(out, func(i, j int) bool {
		return RelevanceScore(out[i]) > RelevanceScore(out[j])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SimilarLikers collects the other users who liked any of the given posts.
// This is the one-hop expansion behind the For You feed.
func SimilarLikers(liked []models.Post, me primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{})
	var out []primitive.ObjectID
	for _, p := range liked {
		for _, likerID := range p.LikedBy {
			if likerID == me {
				continue
			}
			if _, ok := seen[likerID]; ok {
				continue
			}
			seen[likerID] = struct{}{}
			out = append(out, likerID)
		}
	}
	return out
}

// DedupeByID keeps the first occurrence of each post id.
func DedupeByID(posts []models.Post) []models.Post {
	seen := make(map[primitive.ObjectID]struct{}, len(posts))
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// SortByRecency orders posts newest first in place.
func SortByRecency(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
}
