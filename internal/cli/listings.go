package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/favorites"
	"github.com/innerascend/ascend/internal/filter"
	"github.com/innerascend/ascend/internal/models"
)

type PlacesCmd struct {
	List PlaceListCmd `cmd:"" help:"List places, optionally filtered."`
	Add  PlaceAddCmd  `cmd:"" help:"Add a community place."`
}

type PlaceListCmd struct {
	filterFlags
}

func (c *PlaceListCmd) Run(ctx *Context) error {
	places, err := ctx.Store.GetPlaces()
	if err != nil {
		return err
	}
	favs, err := ctx.Store.GetFavorites()
	if err != nil {
		return err
	}
	index := favorites.Build(favs)

	matched := filter.Places(places, c.state(), c.Search)
	if len(matched) == 0 {
		fmt.Println("No places found.")
		return nil
	}
	for _, p := range matched {
		star := " "
		if index.IsFavorited(models.ItemPlace, p.ID) {
			star = "★"
		}
		fmt.Printf("%s %s [%s]%s\n", star, p.Name, p.Category, flagBadges(p.EcoConscious, p.Verified))
	}
	return nil
}

type PlaceAddCmd struct {
	Name     string `arg:"" help:"Place name."`
	Category string `required:"" help:"Place category."`
	Desc     string `help:"Description."`
	Location string `help:"Location name."`
	Price    string `help:"Price range."`
	Eco      bool   `help:"Mark eco-conscious."`
	Verified bool   `help:"Mark verified."`
}

func (c *PlaceAddCmd) Run(ctx *Context) error {
	p := models.Place{
		ID:           uuid.New().String(),
		Name:         c.Name,
		Description:  c.Desc,
		Category:     c.Category,
		LocationName: c.Location,
		PriceRange:   c.Price,
		EcoConscious: c.Eco,
		Verified:     c.Verified,
		CreatedAt:    time.Now(),
	}
	if err := ctx.Store.AddPlace(p); err != nil {
		return err
	}
	fmt.Printf("Added place: %s\n", p.Name)
	return nil
}

type ServicesCmd struct {
	List ServiceListCmd `cmd:"" help:"List services, optionally filtered."`
	Add  ServiceAddCmd  `cmd:"" help:"Add a community service."`
}

type ServiceListCmd struct {
	filterFlags
}

func (c *ServiceListCmd) Run(ctx *Context) error {
	services, err := ctx.Store.GetServices()
	if err != nil {
		return err
	}
	favs, err := ctx.Store.GetFavorites()
	if err != nil {
		return err
	}
	index := favorites.Build(favs)

	matched := filter.Services(services, c.state(), c.Search)
	if len(matched) == 0 {
		fmt.Println("No services found.")
		return nil
	}
	for _, sv := range matched {
		star := " "
		if index.IsFavorited(models.ItemService, sv.ID) {
			star = "★"
		}
		fmt.Printf("%s %s [%s]%s\n", star, sv.Name, sv.Category, flagBadges(sv.EcoConscious, sv.Verified))
	}
	return nil
}

type ServiceAddCmd struct {
	Name     string `arg:"" help:"Service name."`
	Category string `required:"" help:"Service category."`
	Desc     string `help:"Description."`
	Location string `help:"Location name."`
	Price    string `help:"Price range."`
	Eco      bool   `help:"Mark eco-conscious."`
	Verified bool   `help:"Mark verified."`
}

func (c *ServiceAddCmd) Run(ctx *Context) error {
	sv := models.Service{
		ID:           uuid.New().String(),
		Name:         c.Name,
		Description:  c.Desc,
		Category:     c.Category,
		LocationName: c.Location,
		PriceRange:   c.Price,
		EcoConscious: c.Eco,
		Verified:     c.Verified,
		CreatedAt:    time.Now(),
	}
	if err := ctx.Store.AddService(sv); err != nil {
		return err
	}
	fmt.Printf("Added service: %s\n", sv.Name)
	return nil
}

func flagBadges(eco, verified bool) string {
	badges := ""
	if eco {
		badges += " 🌱"
	}
	if verified {
		badges += " ✔"
	}
	return badges
}
