package services

import (
	"context"
	"fmt"
	"testing"

	"vibespace/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func adInventory(n int) []models.Ad {
	ads := make([]models.Ad, n)
	for i := range ads {
		ads[i] = models.Ad{ID: primitive.NewObjectID(), Title: fmt.Sprintf("ad-%d", i)}
	}
	return ads
}

func TestChooseAdFollowsModelPick(t *testing.T) {
	inventory := adInventory(3)
	inference := stubInference{payload: fmt.Sprintf(`{"adId": %q}`, inventory[1].ID.Hex())}

	out := ChooseAd(context.Background(), inference, inventory, []string{"hiking pics"})

	assert.Equal(t, inventory[1], out)
}

func TestChooseAdFallsBackOnModelError(t *testing.T) {
	inventory := adInventory(1)
	inference := stubInference{err: errInferenceDown}

	out := ChooseAd(context.Background(), inference, inventory, nil)

	assert.Equal(t, inventory[0], out)
}

func TestChooseAdFallsBackOnUnknownID(t *testing.T) {
	inventory := adInventory(1)
	inference := stubInference{payload: `{"adId": "not-a-real-id"}`}

	out := ChooseAd(context.Background(), inference, inventory, nil)

	assert.Equal(t, inventory[0], out)
}

func TestChooseAdFallbackStaysInInventory(t *testing.T) {
	inventory := adInventory(5)
	inference := stubInference{err: errInferenceDown}

	out := ChooseAd(context.Background(), inference, inventory, nil)

	assert.Contains(t, inventory, out)
}

func TestAdPromptListsInventoryAndCaptions(t *testing.T) {
	inventory := []models.Ad{{ID: primitive.NewObjectID(), Title: "Trail Shoes", Keywords: []string{"hiking", "outdoors"}}}

	prompt := adPrompt(inventory, []string{"weekend hike"})

	assert.Contains(t, prompt, inventory[0].ID.Hex())
	assert.Contains(t, prompt, "Trail Shoes")
	assert.Contains(t, prompt, "weekend hike")
}
