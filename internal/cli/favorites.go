package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/favorites"
	"github.com/innerascend/ascend/internal/models"
	"github.com/innerascend/ascend/internal/validation"
)

type FavCmd struct {
	Toggle FavToggleCmd `cmd:"" help:"Add or remove a favorite."`
	List   FavListCmd   `cmd:"" help:"List favorites."`
}

type FavToggleCmd struct {
	Type string `arg:"" help:"Item type: event, place, or service."`
	ID   string `arg:"" help:"Item ID."`
}

// Run toggles a favorite the way the app does: write through the store, then
// rebuild the index from a fresh fetch rather than patching it in memory.
func (c *FavToggleCmd) Run(ctx *Context) error {
	itemType := models.ItemType(c.Type)
	if err := validation.ItemType(itemType); err != nil {
		return err
	}

	favs, err := ctx.Store.GetFavorites()
	if err != nil {
		return err
	}
	index := favorites.Build(favs)

	if index.IsFavorited(itemType, c.ID) {
		if err := ctx.Store.RemoveFavorite(itemType, c.ID); err != nil {
			return err
		}
	} else {
		fav := models.Favorite{
			ID:        uuid.New().String(),
			ItemType:  itemType,
			ItemID:    c.ID,
			CreatedAt: time.Now(),
		}
		if err := ctx.Store.AddFavorite(fav); err != nil {
			return err
		}
	}

	favs, err = ctx.Store.GetFavorites()
	if err != nil {
		return err
	}
	index = favorites.Build(favs)

	if index.IsFavorited(itemType, c.ID) {
		fmt.Printf("Favorited %s %s\n", itemType, c.ID)
	} else {
		fmt.Printf("Removed %s %s from favorites\n", itemType, c.ID)
	}
	return nil
}

type FavListCmd struct{}

func (c *FavListCmd) Run(ctx *Context) error {
	favs, err := ctx.Store.GetFavorites()
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}
	for _, f := range favs {
		fmt.Printf("%s  %s\n", f.ItemType, f.ItemID)
	}
	return nil
}
